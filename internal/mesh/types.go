// Package mesh tessellates profiles into surfaces of revolution.
package mesh

// Vertex is a strip vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Strip is one stack of the revolved surface, ready to draw as a triangle strip.
// Vertices alternate lower ring, upper ring for each angular sample.
type Strip struct {
	Vertices []Vertex
}

// Samples returns the number of angular samples in the strip.
func (s Strip) Samples() int {
	return len(s.Vertices) / 2
}

// Pair returns the lower and upper vertex of angular sample j.
func (s Strip) Pair(j int) (lower, upper Vertex) {
	return s.Vertices[2*j], s.Vertices[2*j+1]
}

// Mesh holds one tessellation of a profile.
type Mesh struct {
	Resolution Resolution
	Strips     []Strip
}

// VertexCount returns the total number of vertices across all strips.
func (m *Mesh) VertexCount() int {
	n := 0
	for _, s := range m.Strips {
		n += len(s.Vertices)
	}
	return n
}

// Flatten packs all strips into one vertex slice for a single buffer upload.
// first and count describe each strip for glMultiDrawArrays.
func (m *Mesh) Flatten() (vertices []Vertex, first, count []int32) {
	vertices = make([]Vertex, 0, m.VertexCount())
	first = make([]int32, len(m.Strips))
	count = make([]int32, len(m.Strips))
	for i, s := range m.Strips {
		first[i] = int32(len(vertices))
		count[i] = int32(len(s.Vertices))
		vertices = append(vertices, s.Vertices...)
	}
	return vertices, first, count
}
