package overlay

import (
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bishop-viewer/internal/engine/shader"
	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

const (
	marginX = 10
	marginY = 10
)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 aPosition;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uProjection;

out vec2 vTexCoord;

void main() {
    vTexCoord = aTexCoord;
    gl_Position = uProjection * vec4(aPosition, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec2 vTexCoord;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
    FragColor = texture(uTexture, vTexCoord);
}
`

// Overlay draws text in the top-left corner of the window.
type Overlay struct {
	program  *shader.Program
	vao, vbo uint32
	texID    uint32

	help bool

	key          string
	texW, texH   int
	viewW, viewH int
}

// New creates the overlay. help selects whether the key reference is shown.
// Must be called after the OpenGL context is created.
func New(help bool) (*Overlay, error) {
	p, err := shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	o := &Overlay{program: p, help: help}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 16*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 16, 8)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &o.texID)
	gl.BindTexture(gl.TEXTURE_2D, o.texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return o, nil
}

// Draw renders the overlay for f into a viewport of width×height pixels.
// The text is rasterized again only when its content or color changes.
func (o *Overlay) Draw(f viewer.Frame, width, height int) {
	lines := Lines(f, o.help)
	key := cacheKey(lines, f.TextColor)
	if key != o.key {
		o.upload(Rasterize(lines, f.TextColor))
		o.key = key
		o.viewW = 0
	}
	if width != o.viewW || height != o.viewH {
		o.updateQuad(width, height)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.program.Use()
	proj := mgl32.Ortho2D(0, float32(width), 0, float32(height))
	o.program.SetMat4("uProjection", proj)
	o.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texID)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *Overlay) upload(img *image.RGBA) {
	o.texW, o.texH = img.Rect.Dx(), img.Rect.Dy()
	gl.BindTexture(gl.TEXTURE_2D, o.texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(o.texW), int32(o.texH),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (o *Overlay) updateQuad(width, height int) {
	o.viewW, o.viewH = width, height
	quad := Quad(o.texW, o.texH, height)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, unsafe.Pointer(&quad[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Quad returns the screen-space triangle strip (x, y, u, v per vertex) for a
// texW×texH text image anchored at the top-left of a viewport of the given
// height. Image row 0 maps to the top edge.
func Quad(texW, texH, viewH int) [16]float32 {
	x0 := float32(marginX)
	x1 := x0 + float32(texW)
	y1 := float32(viewH - marginY)
	y0 := y1 - float32(texH)
	return [16]float32{
		x0, y1, 0, 0,
		x0, y0, 0, 1,
		x1, y1, 1, 0,
		x1, y0, 1, 1,
	}
}

func cacheKey(lines []string, c [3]float32) string {
	rgb := toRGBA(c)
	return string([]byte{rgb.R, rgb.G, rgb.B}) + strings.Join(lines, "\n")
}

// Close releases GL resources.
func (o *Overlay) Close() {
	if o.texID != 0 {
		gl.DeleteTextures(1, &o.texID)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	o.program.Delete()
}
