package mesh

import (
	"math"

	"github.com/Faultbox/bishop-viewer/internal/profile"
)

// Tessellate revolves p around the Z axis at the given resolution.
//
// The extent of p is split into res.Stacks equal bands. Each band becomes a
// strip of res.Slices+1 angular samples; the last sample repeats the angle of
// the first so the ring closes without a seam. Normals are the radial
// direction (cos θ, sin θ, 0), exact only where the profile is vertical.
// Texture coordinates map angle to S and stack fraction to T.
func Tessellate(p profile.Profile, res Resolution) *Mesh {
	res = res.Normalize()
	stacks, slices := res.Stacks, res.Slices

	// Ring trigonometry is shared by every stack.
	cos := make([]float64, slices+1)
	sin := make([]float64, slices+1)
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j%slices) / float64(slices)
		cos[j] = math.Cos(theta)
		sin[j] = math.Sin(theta)
	}

	extent := p.Extent()
	m := &Mesh{
		Resolution: res,
		Strips:     make([]Strip, stacks),
	}
	for i := 0; i < stacks; i++ {
		h1 := extent * float64(i) / float64(stacks)
		h2 := extent * float64(i+1) / float64(stacks)
		r1 := p.Radius(h1)
		r2 := p.Radius(h2)
		t1 := float32(i) / float32(stacks)
		t2 := float32(i+1) / float32(stacks)

		verts := make([]Vertex, 0, 2*(slices+1))
		for j := 0; j <= slices; j++ {
			s := float32(j) / float32(slices)
			n := [3]float32{float32(cos[j]), float32(sin[j]), 0}
			verts = append(verts,
				Vertex{
					Position: [3]float32{float32(r1 * cos[j]), float32(r1 * sin[j]), float32(h1)},
					Normal:   n,
					TexCoord: [2]float32{s, t1},
				},
				Vertex{
					Position: [3]float32{float32(r2 * cos[j]), float32(r2 * sin[j]), float32(h2)},
					Normal:   n,
					TexCoord: [2]float32{s, t2},
				},
			)
		}
		m.Strips[i] = Strip{Vertices: verts}
	}
	return m
}
