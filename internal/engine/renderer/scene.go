package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bishop-viewer/internal/mesh"
)

// Camera and lighting constants of the scene.
const (
	FieldOfView = 45.0 // degrees
	NearPlane   = 0.1
	FarPlane    = 100.0

	// FloorHeight is the y of the optional floor plane.
	FloorHeight = -0.6

	// MarkerRadius is the radius of the sphere drawn at the light position.
	MarkerRadius = 0.1
)

var (
	sceneOffset = mgl32.Vec3{0, 0.5, -3}

	lightAmbient   = mgl32.Vec3{0.2, 0.2, 0.2}
	lightDiffuse   = mgl32.Vec3{0.8, 0.8, 0.8}
	lightSpecular  = mgl32.Vec3{0.8, 0.7, 0.2}
	globalAmbient  = mgl32.Vec3{0.2, 0.2, 0.2}
	matAmbient     = mgl32.Vec3{0.8, 0.8, 0.8}
	matDiffuse     = mgl32.Vec3{0.8, 0.8, 0.8}
	matSpecular    = mgl32.Vec3{1, 1, 1}
	matShininess   = float32(50)
	floorHalfWidth = float32(2)
)

// Projection returns the perspective matrix for a viewport of w×h pixels.
func Projection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}

// ModelView returns the view transform: the scene is pushed back and raised,
// then rotated about X and then Y by the drag angles in degrees.
func ModelView(rotX, rotY float32) mgl32.Mat4 {
	return mgl32.Translate3D(sceneOffset[0], sceneOffset[1], sceneOffset[2]).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotX))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotY)))
}

// NormalMatrix returns the inverse transpose of the upper 3×3 of mv.
func NormalMatrix(mv mgl32.Mat4) mgl32.Mat3 {
	return mv.Mat3().Inv().Transpose()
}

// LightEyePosition transforms a model-space light position into eye space.
func LightEyePosition(mv mgl32.Mat4, p [3]float32) mgl32.Vec3 {
	return mv.Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1}).Vec3()
}

// MarkerModelView places the light marker sphere so that it is centered on
// the light. The sphere profile rests on its base, so it is shifted down by
// its radius along the revolution axis.
func MarkerModelView(mv mgl32.Mat4, p [3]float32) mgl32.Mat4 {
	return mv.Mul4(mgl32.Translate3D(p[0], p[1], p[2]-MarkerRadius))
}

// floorVertices returns the floor quad as a four-vertex triangle strip.
func floorVertices(half float32) []mesh.Vertex {
	up := [3]float32{0, 1, 0}
	y := float32(FloorHeight)
	return []mesh.Vertex{
		{Position: [3]float32{-half, y, -half}, Normal: up, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{-half, y, half}, Normal: up, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{half, y, -half}, Normal: up, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{half, y, half}, Normal: up, TexCoord: [2]float32{1, 1}},
	}
}
