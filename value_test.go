package motion

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestValue_Kinds(t *testing.T) {
	assert.Equal(t, KindFloat, Float(1).Kind())
	assert.Equal(t, KindVec2, Vec2Of(r2.Vec{}).Kind())
	assert.Equal(t, KindVec3, Vec3Of(r3.Vec{}).Kind())
	assert.Equal(t, KindDim, DimOf(Dim{}).Kind())
	assert.Equal(t, KindDim2, Dim2Of(Dim2{}).Kind())
	assert.Equal(t, KindPose, PoseOf(IdentityPose()).Kind())
	assert.Equal(t, KindColor, ColorOf(colorful.Color{}).Kind())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Float", KindFloat.String())
	assert.Equal(t, "Pose", KindPose.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestValue_Accessors(t *testing.T) {
	assert.Equal(t, 3.5, Float(3.5).Float())
	assert.Equal(t, r2.Vec{X: 1, Y: -2}, Vec2Of(r2.Vec{X: 1, Y: -2}).Vec2())
	assert.Equal(t, r3.Vec{X: 1, Y: -2, Z: 3}, Vec3Of(r3.Vec{X: 1, Y: -2, Z: 3}).Vec3())
	assert.Equal(t, Dim{Scale: 0.5, Offset: 12}, DimOf(Dim{Scale: 0.5, Offset: 12}).Dim())

	d2 := Dim2{X: Dim{Scale: 1, Offset: 2}, Y: Dim{Scale: 3, Offset: 4}}
	assert.Equal(t, d2, Dim2Of(d2).Dim2())
}

// TestValue_PoseRoundTrip verifies the pose decomposition into six channels
// recomposes to the same position and orientation.
func TestValue_PoseRoundTrip(t *testing.T) {
	p := PoseFromEuler(r3.Vec{X: 1, Y: 2, Z: 3}, 0.7, -0.3, 1.1)
	got := PoseOf(p).Pose()

	assert.Equal(t, p.Position, got.Position)

	wy, wp, wr := p.Euler()
	gy, gp, gr := got.Euler()
	assert.InDelta(t, wy, gy, 1e-9)
	assert.InDelta(t, wp, gp, 1e-9)
	assert.InDelta(t, wr, gr, 1e-9)
}

// TestValue_ColorClamped verifies color reads clamp channels into [0, 1] so
// overshooting springs still produce displayable colors.
func TestValue_ColorClamped(t *testing.T) {
	v := Value{kind: KindColor, ch: channels{1.3, -0.2, 0.5}}
	c := v.Color()
	assert.Equal(t, colorful.Color{R: 1, G: 0, B: 0.5}, c)
}

func TestValue_WrongAccessorPanics(t *testing.T) {
	assert.Panics(t, func() { Float(1).Vec3() })
	assert.Panics(t, func() { Vec3Of(r3.Vec{}).Float() })
	assert.Panics(t, func() { ColorOf(colorful.Color{}).Pose() })
}

// TestSettled_Magnitude verifies vector kinds converge on Euclidean norm:
// two channels each within epsilon can still be unsettled when their
// combined magnitude exceeds it.
func TestSettled_Magnitude(t *testing.T) {
	eps := 1e-3
	d := eps * 0.9

	pos := channels{d, d}
	var tgt, vel channels
	assert.False(t, settled(KindVec2, pos, tgt, vel, eps),
		"norm sqrt(2)*0.9*eps exceeds eps")

	pos = channels{d / 2, d / 2}
	assert.True(t, settled(KindVec2, pos, tgt, vel, eps))
}

// TestSettled_PerComponent verifies compound kinds converge per channel.
func TestSettled_PerComponent(t *testing.T) {
	eps := 1e-3
	d := eps * 0.9

	pos := channels{d, d, d, d}
	var tgt, vel channels
	assert.True(t, settled(KindDim2, pos, tgt, vel, eps),
		"each channel within eps settles a compound kind")

	vel = channels{0, 0, 0, 2 * eps}
	assert.False(t, settled(KindDim2, pos, tgt, vel, eps),
		"a single fast channel keeps the value animating")
}

func TestSettled_Velocity(t *testing.T) {
	var pos, tgt channels
	vel := channels{1}
	assert.False(t, settled(KindFloat, pos, tgt, vel, 1e-4),
		"at target but still moving is not settled")
}

func TestPose_Forward(t *testing.T) {
	p := PoseFromEuler(r3.Vec{}, math.Pi/2, 0, 0)
	f := p.Forward()
	assert.InDelta(t, 0, f.X, 1e-12)
	assert.InDelta(t, 1, f.Y, 1e-12)

	assert.Equal(t, r3.Vec{X: 1}, IdentityPose().Forward())
}
