package motion

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-motion/internal/orient"
)

// Kind enumerates the closed set of springable value kinds. A spring's kind
// is fixed at construction; every operation on it must supply values of the
// same kind.
type Kind int

const (
	// KindFloat is a single scalar channel.
	KindFloat Kind = iota

	// KindVec2 is a 2D vector (two channels, magnitude convergence).
	KindVec2

	// KindVec3 is a 3D vector (three channels, magnitude convergence).
	KindVec3

	// KindDim is a 1D scale/offset pair (two channels).
	KindDim

	// KindDim2 is a 2D scale/offset pair (four channels).
	KindDim2

	// KindPose is an oriented pose decomposed into x, y, z, yaw, pitch and
	// roll channels. Angle channels are unwrapped to the nearest equivalent
	// angle when a target is set.
	KindPose

	// KindColor is an RGB color (three channels, clamped to [0, 1] on read).
	KindColor

	kindCount
)

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTable[k].name
}

// channels is a fixed-width channel vector; kinds use a prefix of it.
type channels [maxChannels]float64

// kindOps describes how one kind maps onto independent scalar channels.
// The table is closed: adding a kind means adding exactly one row here.
type kindOps struct {
	name     string
	channels int

	// angular marks channels holding angles in radians; targets on these
	// channels are unwrapped to the nearest equivalent angle.
	angular [maxChannels]bool

	// magnitude selects Euclidean-norm convergence over the kind's channels
	// instead of the per-component test used for compound kinds.
	magnitude bool

	// clamp, when non-nil, is applied to channels on value recomposition.
	clamp func(*channels)
}

var kindTable = [kindCount]kindOps{
	KindFloat: {name: "Float", channels: floatChannels, magnitude: true},
	KindVec2:  {name: "Vec2", channels: vec2Channels, magnitude: true},
	KindVec3:  {name: "Vec3", channels: vec3Channels, magnitude: true},
	KindDim:   {name: "Dim", channels: dimChannels},
	KindDim2:  {name: "Dim2", channels: dim2Channels},
	KindPose: {
		name:     "Pose",
		channels: poseChannels,
		angular:  [maxChannels]bool{3: true, 4: true, 5: true},
	},
	KindColor: {name: "Color", channels: colorChannels, clamp: clampUnit},
}

func clampUnit(ch *channels) {
	for i := range colorChannels {
		if ch[i] < 0 {
			ch[i] = 0
		} else if ch[i] > 1 {
			ch[i] = 1
		}
	}
}

// Value is a tagged union over the springable kinds. Values are immutable;
// construct them with Float, Vec2Of, Vec3Of, DimOf, Dim2Of, PoseOf or
// ColorOf and read them back with the accessor matching the kind.
type Value struct {
	kind Kind
	ch   channels
}

// Float wraps a scalar.
func Float(v float64) Value {
	return Value{kind: KindFloat, ch: channels{v}}
}

// Vec2Of wraps a 2D vector.
func Vec2Of(v r2.Vec) Value {
	return Value{kind: KindVec2, ch: channels{v.X, v.Y}}
}

// Vec3Of wraps a 3D vector.
func Vec3Of(v r3.Vec) Value {
	return Value{kind: KindVec3, ch: channels{v.X, v.Y, v.Z}}
}

// DimOf wraps a scale/offset pair.
func DimOf(d Dim) Value {
	return Value{kind: KindDim, ch: channels{d.Scale, d.Offset}}
}

// Dim2Of wraps a 2D scale/offset pair.
func Dim2Of(d Dim2) Value {
	return Value{kind: KindDim2, ch: channels{d.X.Scale, d.X.Offset, d.Y.Scale, d.Y.Offset}}
}

// PoseOf wraps an oriented pose, decomposing the orientation into yaw,
// pitch and roll channels.
func PoseOf(p Pose) Value {
	yaw, pitch, roll := orient.Euler(p.Orientation)
	return Value{kind: KindPose, ch: channels{
		p.Position.X, p.Position.Y, p.Position.Z, yaw, pitch, roll,
	}}
}

// ColorOf wraps an RGB color.
func ColorOf(c colorful.Color) Value {
	return Value{kind: KindColor, ch: channels{c.R, c.G, c.B}}
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Float unwraps a KindFloat value. It panics on any other kind: reading a
// value through the wrong accessor is a programming error.
func (v Value) Float() float64 {
	v.mustBe(KindFloat)
	return v.ch[0]
}

// Vec2 unwraps a KindVec2 value.
func (v Value) Vec2() r2.Vec {
	v.mustBe(KindVec2)
	return r2.Vec{X: v.ch[0], Y: v.ch[1]}
}

// Vec3 unwraps a KindVec3 value.
func (v Value) Vec3() r3.Vec {
	v.mustBe(KindVec3)
	return r3.Vec{X: v.ch[0], Y: v.ch[1], Z: v.ch[2]}
}

// Dim unwraps a KindDim value.
func (v Value) Dim() Dim {
	v.mustBe(KindDim)
	return Dim{Scale: v.ch[0], Offset: v.ch[1]}
}

// Dim2 unwraps a KindDim2 value.
func (v Value) Dim2() Dim2 {
	v.mustBe(KindDim2)
	return Dim2{
		X: Dim{Scale: v.ch[0], Offset: v.ch[1]},
		Y: Dim{Scale: v.ch[2], Offset: v.ch[3]},
	}
}

// Pose unwraps a KindPose value, recomposing the orientation from the
// angle channels.
func (v Value) Pose() Pose {
	v.mustBe(KindPose)
	return Pose{
		Position:    r3.Vec{X: v.ch[0], Y: v.ch[1], Z: v.ch[2]},
		Orientation: orient.FromEuler(v.ch[3], v.ch[4], v.ch[5]),
	}
}

// Color unwraps a KindColor value. Channels are clamped to [0, 1], so the
// result is always a displayable color even mid-overshoot.
func (v Value) Color() colorful.Color {
	v.mustBe(KindColor)
	return colorful.Color{R: v.ch[0], G: v.ch[1], B: v.ch[2]}.Clamped()
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("motion: %s accessor called on %s value", k, v.kind))
	}
}

// zeroValue returns the additive zero of a kind (used for initial
// velocities and final callback velocities).
func zeroValue(k Kind) Value {
	return Value{kind: k}
}

// composeValue rebuilds a Value from raw channels, applying the kind's
// clamp policy.
func composeValue(k Kind, ch channels) Value {
	if clamp := kindTable[k].clamp; clamp != nil {
		clamp(&ch)
	}
	return Value{kind: k, ch: ch}
}

// settled reports whether every channel of the position error and velocity
// is within epsilon, using the kind's convergence policy.
func settled(k Kind, pos, target, vel channels, epsilon float64) bool {
	ops := kindTable[k]
	if ops.magnitude {
		var dp, dv float64
		for i := range ops.channels {
			d := pos[i] - target[i]
			dp += d * d
			dv += vel[i] * vel[i]
		}
		return math.Sqrt(dp) <= epsilon && math.Sqrt(dv) <= epsilon
	}
	for i := range ops.channels {
		if math.Abs(pos[i]-target[i]) > epsilon || math.Abs(vel[i]) > epsilon {
			return false
		}
	}
	return true
}
