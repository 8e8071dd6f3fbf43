package viewer

import "math"

// Light is the point light, parameterized by spin around two axes and
// distance from the origin.
type Light struct {
	SpinX    float64 // degrees, elevation
	SpinY    float64 // degrees, around the vertical axis
	Distance float64
	Position [3]float64
}

// Update recomputes Position from spin and distance.
func (l *Light) Update() {
	x := l.SpinX * math.Pi / 180
	y := l.SpinY * math.Pi / 180
	l.Position = [3]float64{
		l.Distance * math.Sin(y) * math.Cos(x),
		l.Distance * math.Sin(x),
		l.Distance * math.Cos(y) * math.Cos(x),
	}
}
