// Package profile provides silhouette curves that map a height along the
// revolution axis to a radius.
package profile

// Profile is a silhouette sampled by the tessellator.
//
// Radius must be non-negative for every input. Heights below zero are
// evaluated at zero and heights above Extent return zero, so the revolved
// surface closes at its tip instead of wrapping or extrapolating.
type Profile interface {
	Radius(h float64) float64
	Extent() float64
}

// Func adapts a plain function to Profile over [0, Height].
type Func struct {
	F      func(h float64) float64
	Height float64
}

// Radius implements Profile.
func (f Func) Radius(h float64) float64 {
	if h < 0 {
		h = 0
	}
	if h > f.Height {
		return 0
	}
	r := f.F(h)
	if r < 0 {
		return 0
	}
	return r
}

// Extent implements Profile.
func (f Func) Extent() float64 {
	return f.Height
}
