package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestModelViewIdentityRotation(t *testing.T) {
	mv := ModelView(0, 0)
	origin := mv.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{0, 0.5, -3, 1}
	for i := range want {
		if !approxEqual(origin[i], want[i]) {
			t.Fatalf("expected origin at %v, got %v", want, origin)
		}
	}
}

func TestModelViewRotationOrder(t *testing.T) {
	// Y rotation is applied to the model first: +X turns to -Z under 90°.
	mv := ModelView(0, 90)
	p := mv.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !approxEqual(p[0], 0) || !approxEqual(p[1], 0.5) || !approxEqual(p[2], -4) {
		t.Errorf("expected (0, 0.5, -4), got %v", p)
	}
}

func TestNormalMatrixRotationOnly(t *testing.T) {
	mv := ModelView(30, 45)
	n := NormalMatrix(mv)
	rot := mv.Mat3()
	for i := range n {
		if !approxEqual(n[i], rot[i]) {
			t.Fatalf("expected normal matrix to equal rotation part, got %v vs %v", n, rot)
		}
	}
}

func TestLightEyePosition(t *testing.T) {
	mv := ModelView(0, 0)
	got := LightEyePosition(mv, [3]float32{2, 2, 2})
	want := mgl32.Vec3{2, 2.5, -1}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMarkerCentered(t *testing.T) {
	light := [3]float32{1, 2, 3}
	mv := MarkerModelView(mgl32.Ident4(), light)
	// The sphere profile is centered at h = radius on its axis.
	c := mv.Mul4x1(mgl32.Vec4{0, 0, MarkerRadius, 1})
	for i := 0; i < 3; i++ {
		if !approxEqual(c[i], light[i]) {
			t.Fatalf("expected marker center %v, got %v", light, c)
		}
	}
}

func TestProjectionAspect(t *testing.T) {
	wide := Projection(1600, 800)
	square := Projection(800, 800)
	if !approxEqual(wide[0]*2, square[0]) {
		t.Errorf("expected x scale to halve for 2:1 aspect, got %v vs %v", wide[0], square[0])
	}
	if zero := Projection(0, 0); !approxEqual(zero[0], square[0]) {
		t.Errorf("expected degenerate size to fall back to square aspect")
	}
}

func TestFloorVertices(t *testing.T) {
	v := floorVertices(2)
	if len(v) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(v))
	}
	for i, vert := range v {
		if vert.Position[1] != FloorHeight {
			t.Errorf("vertex %d: expected y %v, got %v", i, FloorHeight, vert.Position[1])
		}
		if vert.Normal != [3]float32{0, 1, 0} {
			t.Errorf("vertex %d: expected up normal, got %v", i, vert.Normal)
		}
	}
}
