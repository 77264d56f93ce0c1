package motion

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-motion/internal/orient"
)

// Dim is a one-dimensional scale/offset pair: a relative fraction of some
// external extent plus an absolute offset. Both channels animate
// independently.
type Dim struct {
	Scale  float64
	Offset float64
}

// Dim2 is a two-dimensional scale/offset pair.
type Dim2 struct {
	X Dim
	Y Dim
}

// Pose is an oriented point: a position and a rotation.
//
// The orientation convention is right-handed, +X forward and +Z up; see the
// internal orient package. The zero Pose is at the origin with an invalid
// zero quaternion: use IdentityPose or set Orientation explicitly.
type Pose struct {
	Position    r3.Vec
	Orientation quat.Number
}

// IdentityPose returns a pose at the origin facing +X.
func IdentityPose() Pose {
	return Pose{Orientation: orient.Identity}
}

// PoseFromEuler builds a pose from a position and yaw/pitch/roll angles in
// radians.
func PoseFromEuler(position r3.Vec, yaw, pitch, roll float64) Pose {
	return Pose{Position: position, Orientation: orient.FromEuler(yaw, pitch, roll)}
}

// Euler returns the pose's yaw, pitch and roll angles in radians.
func (p Pose) Euler() (yaw, pitch, roll float64) {
	return orient.Euler(p.Orientation)
}

// Forward returns the pose's facing direction (+X rotated by the
// orientation).
func (p Pose) Forward() r3.Vec {
	return orient.Forward(p.Orientation)
}
