package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/bishop-viewer/internal/mesh"
)

const vertexStride = int32(unsafe.Sizeof(mesh.Vertex{}))

// stripBuffer is a VAO/VBO pair holding a set of triangle strips.
type stripBuffer struct {
	vao, vbo uint32
	first    []int32
	count    []int32
}

func newStripBuffer() *stripBuffer {
	b := &stripBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 12)
	gl.EnableVertexAttribArray(1)
	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return b
}

// setMesh replaces the buffer contents with m.
func (b *stripBuffer) setMesh(m *mesh.Mesh) {
	vertices, first, count := m.Flatten()
	b.set(vertices, first, count)
}

func (b *stripBuffer) set(vertices []mesh.Vertex, first, count []int32) {
	b.first, b.count = first, count
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *stripBuffer) draw() {
	if len(b.first) == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.MultiDrawArrays(gl.TRIANGLE_STRIP, &b.first[0], &b.count[0], int32(len(b.first)))
	gl.BindVertexArray(0)
}

func (b *stripBuffer) delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}
