package mesh

import "github.com/Faultbox/bishop-viewer/internal/profile"

// Cache keeps the last tessellation of a profile, keyed by resolution.
type Cache struct {
	profile profile.Profile
	current *Mesh
}

// NewCache creates an empty cache for p.
func NewCache(p profile.Profile) *Cache {
	return &Cache{profile: p}
}

// Get returns the mesh for res and whether it was rebuilt by this call.
func (c *Cache) Get(res Resolution) (*Mesh, bool) {
	res = res.Normalize()
	if c.current != nil && c.current.Resolution == res {
		return c.current, false
	}
	c.current = Tessellate(c.profile, res)
	return c.current, true
}
