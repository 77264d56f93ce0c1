// Package engine implements the closed-form numerics behind the public
// motion API: the damped harmonic oscillator solution and the Catmull-Rom
// curve basis with its arc-length tables.
package engine

import (
	"math"
)

// Coeffs holds the closed-form oscillator blend coefficients for one
// (damper, speed, elapsed) triple. The same coefficients apply to every
// scalar channel of a compound value, so they are computed once per step
// and reused across channels.
//
// For a channel with initial position p0, initial velocity v0 and target T:
//
//	position = A*p0 + (1-A)*T + (Sine/speed)*v0
//	velocity = B*(T-p0) + (CosH-DamperSin)*v0
type Coeffs struct {
	A         float64
	B         float64
	Sine      float64
	CosH      float64
	DamperSin float64

	speed float64
	drift float64 // elapsed time, used only by the speed==0 limit
}

// Coefficients evaluates the damped harmonic oscillator closed form at
// elapsed seconds dt. The three damping regimes share one coefficient
// shape; they are mathematically equivalent limits of each other, so the
// computed motion is continuous as damper crosses 1.
//
// A speed of zero degenerates the oscillator to constant-velocity drift
// (the analytic limit of the closed form as speed approaches zero).
func Coefficients(damper, speed, dt float64) Coeffs {
	c := Coeffs{speed: speed}

	if speed == 0 {
		// Limit speed -> 0: position = p0 + v0*dt, velocity = v0.
		c.A = 1
		c.CosH = 1
		c.drift = dt
		return c
	}

	x := speed * dt
	d2 := damper * damper

	switch {
	case d2 < 1:
		// Underdamped: exponentially decaying sinusoid.
		h := math.Sqrt(1 - d2)
		e := math.Exp(-damper * x)
		sin := math.Sin(h * x)
		c.Sine = e * sin / h
		c.CosH = e * math.Cos(h*x)
		c.DamperSin = damper * e * sin / h

	case d2 == 1:
		// Critically damped: linear-times-exponential limit of both
		// neighboring regimes.
		e := math.Exp(-x)
		c.Sine = e * x
		c.CosH = e
		c.DamperSin = e * x

	default:
		// Overdamped: sum of two real exponentials. Computed directly as
		// exponentials of the (negative) characteristic roots so that no
		// intermediate cosh/sinh term overflows for large dt.
		h := math.Sqrt(d2 - 1)
		e1 := math.Exp(-(damper - h) * x)
		e2 := math.Exp(-(damper + h) * x)
		c.Sine = (e1 - e2) / (2 * h)
		c.CosH = (e1 + e2) / 2
		c.DamperSin = damper * (e1 - e2) / (2 * h)
	}

	c.A = c.CosH + c.DamperSin
	c.B = speed * c.Sine
	return c
}

// Advance applies the coefficients to one scalar channel.
func (c Coeffs) Advance(p0, v0, target float64) (pos, vel float64) {
	if c.speed == 0 {
		return p0 + v0*c.drift, v0
	}
	pos = c.A*p0 + (1-c.A)*target + (c.Sine/c.speed)*v0
	vel = c.B*(target-p0) + (c.CosH-c.DamperSin)*v0
	return pos, vel
}
