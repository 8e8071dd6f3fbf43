package profile

import "math"

// BishopHeight is the vertical extent of the bishop model in world units.
const BishopHeight = 1.2

// bishopKnots traces the right-hand edge of a bishop from base to tip.
var bishopKnots = []Knot{
	{0.00, 0.220},
	{0.03, 0.225},
	{0.06, 0.215},
	{0.09, 0.180},
	{0.12, 0.165},
	{0.16, 0.160}, // base ring
	{0.20, 0.130},
	{0.26, 0.105},
	{0.34, 0.090},
	{0.44, 0.078},
	{0.54, 0.070},
	{0.62, 0.068},
	{0.66, 0.100}, // collar
	{0.69, 0.105},
	{0.72, 0.075},
	{0.76, 0.080},
	{0.82, 0.110}, // mitre
	{0.90, 0.125},
	{0.98, 0.110},
	{1.04, 0.080},
	{1.09, 0.045},
	{1.12, 0.040}, // neck
	{1.15, 0.050}, // finial
	{1.18, 0.035},
	{1.20, 0.000},
}

// Bishop returns the bishop silhouette over [0, BishopHeight].
func Bishop() *Spline {
	s, err := NewSpline(bishopKnots)
	if err != nil {
		// The knot table is a compile-time constant.
		panic(err)
	}
	return s
}

// Sphere returns the profile of a sphere of the given radius resting on h=0.
func Sphere(radius float64) Func {
	return Func{
		Height: 2 * radius,
		F: func(h float64) float64 {
			d := h - radius
			return math.Sqrt(math.Max(0, radius*radius-d*d))
		},
	}
}
