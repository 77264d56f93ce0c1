// Package orient provides quaternion orientation helpers shared by the
// spring and spline engines.
//
// Conventions: right-handed frame with +X forward and +Z up. Euler angles
// are intrinsic Tait-Bryan Z-Y-X: yaw about Z, pitch about Y, roll about X.
package orient

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Identity is the no-rotation quaternion.
var Identity = quat.Number{Real: 1}

// Up is the world up axis used when deriving look rotations.
var Up = r3.Vec{Z: 1}

// parallelTolerance is the squared-norm threshold below which two directions
// are treated as parallel when building an orthonormal basis.
const parallelTolerance = 1e-12

// slerpLinearThreshold is the dot product above which Slerp falls back to
// normalized linear interpolation to avoid a vanishing sin denominator.
const slerpLinearThreshold = 0.9995

// FromEuler builds a unit quaternion from yaw (Z), pitch (Y) and roll (X)
// angles in radians, composed intrinsically in Z-Y-X order.
func FromEuler(yaw, pitch, roll float64) quat.Number {
	cy, sy := math.Cos(yaw/2), math.Sin(yaw/2)
	cp, sp := math.Cos(pitch/2), math.Sin(pitch/2)
	cr, sr := math.Cos(roll/2), math.Sin(roll/2)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// Euler extracts yaw, pitch and roll angles in radians from a unit
// quaternion. Pitch is clamped into [-pi/2, pi/2]; at the gimbal-lock poles
// yaw and roll are not individually recoverable and the split between them
// is unspecified.
func Euler(q quat.Number) (yaw, pitch, roll float64) {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	sinr := 2 * (w*x + y*z)
	cosr := 1 - 2*(x*x+y*y)
	roll = math.Atan2(sinr, cosr)

	sinp := 2 * (w*y - z*x)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	pitch = math.Asin(sinp)

	siny := 2 * (w*z + x*y)
	cosy := 1 - 2*(y*y+z*z)
	yaw = math.Atan2(siny, cosy)

	return yaw, pitch, roll
}

// Normalize scales q to unit norm. The zero quaternion normalizes to
// Identity.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return Identity
	}
	return quat.Scale(1/n, q)
}

// Slerp spherically interpolates from a to b along the shorter arc.
// t=0 returns a, t=1 returns b (or its antipode, which represents the same
// rotation). Inputs are assumed unit quaternions.
func Slerp(a, b quat.Number, t float64) quat.Number {
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	if dot < 0 {
		b = quat.Scale(-1, b)
		dot = -dot
	}

	if dot > slerpLinearThreshold {
		// Nearly parallel: nlerp is accurate and avoids division by a
		// vanishing sin(theta).
		lerped := quat.Add(quat.Scale(1-t, a), quat.Scale(t, b))
		return Normalize(lerped)
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return quat.Add(quat.Scale(wa, a), quat.Scale(wb, b))
}

// Rotate applies the rotation q to v.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(q).Rotate(v)
}

// Forward returns the facing direction of q: the world +X axis rotated by q.
func Forward(q quat.Number) r3.Vec {
	return Rotate(q, r3.Vec{X: 1})
}

// LookAlong returns the rotation whose forward (+X) axis points along dir,
// keeping the local up axis as close to up as possible. A zero-length dir
// returns Identity. If dir is parallel to up an arbitrary perpendicular
// reference is substituted so the result is always well formed.
func LookAlong(dir, up r3.Vec) quat.Number {
	if r3.Norm2(dir) < parallelTolerance {
		return Identity
	}
	f := r3.Unit(dir)

	left := r3.Cross(up, f)
	if r3.Norm2(left) < parallelTolerance {
		// dir is parallel to up; any horizontal reference works.
		left = r3.Cross(r3.Vec{X: 1}, f)
		if r3.Norm2(left) < parallelTolerance {
			left = r3.Cross(r3.Vec{Y: 1}, f)
		}
	}
	left = r3.Unit(left)
	u := r3.Cross(f, left)

	return matrixToQuat(f, left, u)
}

// matrixToQuat converts an orthonormal basis (columns x, y, z of a rotation
// matrix) to a unit quaternion using Shepperd's method.
func matrixToQuat(x, y, z r3.Vec) quat.Number {
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	trace := m00 + m11 + m22
	var q quat.Number
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q.Real = s / 4
		q.Imag = (m21 - m12) / s
		q.Jmag = (m02 - m20) / s
		q.Kmag = (m10 - m01) / s
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q.Real = (m21 - m12) / s
		q.Imag = s / 4
		q.Jmag = (m01 + m10) / s
		q.Kmag = (m02 + m20) / s
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q.Real = (m02 - m20) / s
		q.Imag = (m01 + m10) / s
		q.Jmag = s / 4
		q.Kmag = (m12 + m21) / s
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q.Real = (m10 - m01) / s
		q.Imag = (m02 + m20) / s
		q.Jmag = (m12 + m21) / s
		q.Kmag = s / 4
	}
	return Normalize(q)
}

// ShortestAngle returns the angle equivalent to target (mod 2*pi) that is
// closest to reference. The result differs from target by an exact multiple
// of 2*pi.
func ShortestAngle(target, reference float64) float64 {
	diff := math.Mod(target-reference, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return reference + diff
}

// Smoothstep is the cubic ease curve 3t^2 - 2t^3 used for node rotation
// blending.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
