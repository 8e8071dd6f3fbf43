package profile

import (
	"math"
	"testing"
)

func TestBishopNonNegative(t *testing.T) {
	p := Bishop()
	if p.Extent() != BishopHeight {
		t.Fatalf("expected extent %v, got %v", BishopHeight, p.Extent())
	}
	const samples = 10000
	for i := 0; i <= samples; i++ {
		h := p.Extent() * float64(i) / samples
		if r := p.Radius(h); r < 0 {
			t.Fatalf("Radius(%v) = %v, want >= 0", h, r)
		}
	}
}

func TestSplinePassesThroughKnots(t *testing.T) {
	p := Bishop()
	for _, k := range bishopKnots {
		got := p.Radius(k.H)
		if math.Abs(got-k.R) > 1e-9 {
			t.Errorf("Radius(%v) = %v, want %v", k.H, got, k.R)
		}
	}
}

func TestSplineContinuity(t *testing.T) {
	p := Bishop()
	const eps = 1e-7
	for _, k := range bishopKnots[1 : len(bishopKnots)-1] {
		below := p.Radius(k.H - eps)
		above := p.Radius(k.H + eps)
		if math.Abs(below-above) > 1e-5 {
			t.Errorf("discontinuity at h=%v: %v vs %v", k.H, below, above)
		}
	}
}

func TestSplineOutOfRange(t *testing.T) {
	p := Bishop()
	if got, want := p.Radius(-1), p.Radius(0); got != want {
		t.Errorf("expected Radius(-1) to equal Radius(0) = %v, got %v", want, got)
	}
	if got := p.Radius(p.Extent() + 0.01); got != 0 {
		t.Errorf("expected 0 above extent, got %v", got)
	}
}

func TestSplineLinearData(t *testing.T) {
	// A natural spline through collinear points is the line itself.
	s, err := NewSpline([]Knot{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	if err != nil {
		t.Fatalf("NewSpline: %v", err)
	}
	for _, h := range []float64{0, 0.5, 1.25, 2.7, 3.99, 4} {
		if got, want := s.Radius(h), h+1; math.Abs(got-want) > 1e-9 {
			t.Errorf("Radius(%v) = %v, want %v", h, got, want)
		}
	}
}

func TestNewSplineInvalid(t *testing.T) {
	tests := []struct {
		name  string
		knots []Knot
	}{
		{"too few", []Knot{{0, 1}, {1, 1}, {2, 1}}},
		{"not starting at zero", []Knot{{0.1, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"non-increasing", []Knot{{0, 1}, {1, 1}, {1, 1}, {3, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpline(tt.knots); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSphere(t *testing.T) {
	s := Sphere(0.1)
	if s.Extent() != 0.2 {
		t.Errorf("expected extent 0.2, got %v", s.Extent())
	}
	if got := s.Radius(0.1); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("expected equator radius 0.1, got %v", got)
	}
	if got := s.Radius(0); got != 0 {
		t.Errorf("expected pole radius 0, got %v", got)
	}
	if got := s.Radius(0.3); got != 0 {
		t.Errorf("expected 0 above extent, got %v", got)
	}
}
