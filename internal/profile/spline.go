package profile

import (
	"errors"
	"fmt"
	"sort"
)

// Knot is a single (height, radius) sample of a silhouette.
type Knot struct {
	H float64
	R float64
}

// segment holds the cubic a*dh^3 + b*dh^2 + c*dh + d for one knot interval.
type segment struct {
	a, b, c, d float64
}

// Spline is a natural cubic spline through a set of knots.
type Spline struct {
	knots []float64
	segs  []segment
}

// NewSpline fits a natural cubic spline (zero second derivative at both ends)
// through knots. Heights must be strictly increasing and start at zero.
func NewSpline(knots []Knot) (*Spline, error) {
	if len(knots) < 4 {
		return nil, fmt.Errorf("need at least 4 knots, got %d", len(knots))
	}
	if knots[0].H != 0 {
		return nil, errors.New("first knot must be at height 0")
	}
	for i := 1; i < len(knots); i++ {
		if knots[i].H <= knots[i-1].H {
			return nil, fmt.Errorf("knot %d: height %.4f not above %.4f", i, knots[i].H, knots[i-1].H)
		}
	}

	n := len(knots) - 1
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = knots[i+1].H - knots[i].H
	}

	// Tridiagonal system for the second derivatives m[1..n-1]; m[0] = m[n] = 0.
	m := make([]float64, n+1)
	if n > 1 {
		diag := make([]float64, n-1)
		rhs := make([]float64, n-1)
		for i := 1; i < n; i++ {
			diag[i-1] = 2 * (h[i-1] + h[i])
			rhs[i-1] = 6 * ((knots[i+1].R-knots[i].R)/h[i] - (knots[i].R-knots[i-1].R)/h[i-1])
		}
		// Thomas algorithm; sub and super diagonals are h[i-1] and h[i].
		for i := 1; i < n-1; i++ {
			w := h[i] / diag[i-1]
			diag[i] -= w * h[i]
			rhs[i] -= w * rhs[i-1]
		}
		m[n-1] = rhs[n-2] / diag[n-2]
		for i := n - 2; i >= 1; i-- {
			m[i] = (rhs[i-1] - h[i]*m[i+1]) / diag[i-1]
		}
	}

	s := &Spline{
		knots: make([]float64, len(knots)),
		segs:  make([]segment, n),
	}
	for i, k := range knots {
		s.knots[i] = k.H
	}
	for i := 0; i < n; i++ {
		y0, y1 := knots[i].R, knots[i+1].R
		s.segs[i] = segment{
			a: (m[i+1] - m[i]) / (6 * h[i]),
			b: m[i] / 2,
			c: (y1-y0)/h[i] - h[i]*(2*m[i]+m[i+1])/6,
			d: y0,
		}
	}
	return s, nil
}

// Radius implements Profile.
func (s *Spline) Radius(h float64) float64 {
	if h < 0 {
		h = 0
	}
	if h > s.Extent() {
		return 0
	}

	// First knot strictly above h, minus one, is the containing interval.
	i := sort.SearchFloat64s(s.knots, h)
	if i < len(s.knots) && s.knots[i] == h {
		i++
	}
	i--
	if i >= len(s.segs) {
		i = len(s.segs) - 1
	}

	seg := s.segs[i]
	dh := h - s.knots[i]
	r := ((seg.a*dh+seg.b)*dh+seg.c)*dh + seg.d
	if r < 0 {
		return 0
	}
	return r
}

// Extent implements Profile.
func (s *Spline) Extent() float64 {
	return s.knots[len(s.knots)-1]
}
