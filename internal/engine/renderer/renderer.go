// Package renderer draws the bishop scene with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/bishop-viewer/internal/engine/shader"
	"github.com/Faultbox/bishop-viewer/internal/logger"
	"github.com/Faultbox/bishop-viewer/internal/mesh"
	"github.com/Faultbox/bishop-viewer/internal/profile"
	"github.com/Faultbox/bishop-viewer/internal/texture"
	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	TextureSize int
}

// Renderer handles all OpenGL drawing of the scene.
type Renderer struct {
	config   Config
	program  *shader.Program
	textures *texture.Set

	bishop *mesh.Cache
	body   *stripBuffer
	marker *stripBuffer
	floor  *stripBuffer

	// One GL texture per mode, created on first use.
	texIDs [texture.KindDynamic + 1]uint32

	projection mgl32.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, textures *texture.Set) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		textures: textures,
		bishop:   mesh.NewCache(profile.Bishop()),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var err error
	r.program, err = shader.New(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene shader: %w", err)
	}

	r.body = newStripBuffer()

	r.marker = newStripBuffer()
	r.marker.setMesh(mesh.Tessellate(profile.Sphere(MarkerRadius), mesh.Resolution{Stacks: 20, Slices: 20}))

	r.floor = newStripBuffer()
	r.floor.set(floorVertices(floorHalfWidth), []int32{0}, []int32{4})

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, b := range []*stripBuffer{r.body, r.marker, r.floor} {
		if b != nil {
			b.delete()
		}
	}
	for i, id := range r.texIDs {
		if id != 0 {
			gl.DeleteTextures(1, &r.texIDs[i])
		}
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles a change of the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.projection = Projection(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Render draws one frame. dynamicDirty requests regeneration of the dynamic
// color texture.
func (r *Renderer) Render(f viewer.Frame, dynamicDirty bool) {
	if dynamicDirty && r.texIDs[texture.KindDynamic] != 0 {
		r.regenerate(texture.KindDynamic)
	}

	m, rebuilt := r.bishop.Get(f.Resolution)
	if rebuilt {
		r.body.setMesh(m)
		logger.Debug("bishop tessellated",
			zap.Int("stacks", m.Resolution.Stacks),
			zap.Int("slices", m.Resolution.Slices),
			zap.Int("vertices", m.VertexCount()),
		)
	}

	bg := f.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	mv := ModelView(f.RotX, f.RotY)

	p := r.program
	p.Use()
	p.SetMat4("uProjection", r.projection)
	p.SetVec3("uLightEyePos", LightEyePosition(mv, f.LightPosition))
	p.SetVec3("uLightAmbient", lightAmbient)
	p.SetVec3("uLightDiffuse", lightDiffuse)
	p.SetVec3("uLightSpecular", lightSpecular)
	p.SetVec3("uGlobalAmbient", globalAmbient)
	p.SetVec3("uMatAmbient", matAmbient)
	p.SetVec3("uMatDiffuse", matDiffuse)
	p.SetVec3("uMatSpecular", matSpecular)
	p.SetFloat("uShininess", matShininess)
	p.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	// Bishop
	r.setModelView(mv)
	if f.TextureEnabled {
		gl.BindTexture(gl.TEXTURE_2D, r.texture(f.Mode))
	}
	p.SetBool("uTextured", f.TextureEnabled)
	r.body.draw()

	// Floor
	if f.Floor {
		gl.BindTexture(gl.TEXTURE_2D, r.texture(texture.KindCheckerboard))
		p.SetBool("uTextured", true)
		r.floor.draw()
	}

	// Light marker
	r.setModelView(MarkerModelView(mv, f.LightPosition))
	p.SetBool("uTextured", false)
	r.marker.draw()

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) setModelView(mv mgl32.Mat4) {
	r.program.SetMat4("uModelView", mv)
	r.program.SetMat3("uNormalMatrix", NormalMatrix(mv))
}

// texture returns the GL texture for kind, generating it on first use.
func (r *Renderer) texture(kind texture.Kind) uint32 {
	if r.texIDs[kind] == 0 {
		r.regenerate(kind)
	}
	return r.texIDs[kind]
}

func (r *Renderer) regenerate(kind texture.Kind) {
	img := r.textures.Mode(kind).Generate(r.config.TextureSize)
	if r.texIDs[kind] == 0 {
		r.texIDs[kind] = texture.Upload(img)
	} else {
		texture.Replace(r.texIDs[kind], img)
	}
	logger.Debug("texture generated",
		zap.Stringer("mode", kind),
		zap.Int("size", img.Size),
	)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
