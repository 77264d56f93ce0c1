package engine

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Basis holds the four polynomial coefficient vectors of one uniform
// Catmull-Rom segment through the window (p0, p1, p2, p3). The segment
// interpolates from p1 (t=0) to p2 (t=1); p0 and p3 only shape the
// tangents.
type Basis struct {
	Point   r3.Vec // constant term, equals p1
	Tangent r3.Vec // first-order term, 0.5*(p2-p0)
	Second  r3.Vec // second-order term
	Third   r3.Vec // third-order term
}

// NewBasis computes the uniform Catmull-Rom coefficients for the four-point
// window. Callers implement the boundary policy (clamping window indices at
// the curve ends) before calling.
func NewBasis(p0, p1, p2, p3 r3.Vec) Basis {
	return Basis{
		Point:   p1,
		Tangent: r3.Scale(0.5, r3.Sub(p2, p0)),
		Second: r3.Add(
			r3.Sub(p0, r3.Scale(2.5, p1)),
			r3.Sub(r3.Scale(2, p2), r3.Scale(0.5, p3)),
		),
		Third: r3.Add(
			r3.Scale(1.5, r3.Sub(p1, p2)),
			r3.Scale(0.5, r3.Sub(p3, p0)),
		),
	}
}

// Position evaluates the segment at local parameter t in [0, 1].
func (b Basis) Position(t float64) r3.Vec {
	// point + tangent*t + second*t^2 + third*t^3, Horner form.
	v := r3.Add(b.Second, r3.Scale(t, b.Third))
	v = r3.Add(b.Tangent, r3.Scale(t, v))
	return r3.Add(b.Point, r3.Scale(t, v))
}

// Derivative evaluates the analytic first derivative of the position
// polynomial at local parameter t. This is the true curve tangent used by
// tangent-following orientation.
func (b Basis) Derivative(t float64) r3.Vec {
	v := r3.Add(r3.Scale(2, b.Second), r3.Scale(3*t, b.Third))
	return r3.Add(b.Tangent, r3.Scale(t, v))
}
