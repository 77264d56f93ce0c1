package motion

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewSpring_Defaults(t *testing.T) {
	s, err := NewSpring(Float(5))
	require.NoError(t, err)

	assert.Equal(t, KindFloat, s.Kind())
	assert.Equal(t, float64(DefaultDamper), s.Damper())
	assert.Equal(t, float64(DefaultSpeed), s.Speed())
	assert.Equal(t, Float(5), s.Target(), "spring starts targeting its initial value")
	assert.Equal(t, 5.0, s.Position().Float())
	assert.Equal(t, 0.0, s.Velocity().Float())
}

func TestNewSpring_OptionValidation(t *testing.T) {
	_, err := NewSpring(Float(0), WithDamper(-0.1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSpring(Float(0), WithSpeed(-1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSpring(Float(0), WithClock(nil))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSpring_KindMismatch(t *testing.T) {
	s, err := NewSpring(Float(0))
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetTarget(Vec3Of(r3.Vec{})), ErrKindMismatch)
	assert.ErrorIs(t, s.SetPosition(Vec3Of(r3.Vec{})), ErrKindMismatch)
	assert.ErrorIs(t, s.SetVelocity(Vec3Of(r3.Vec{})), ErrKindMismatch)
	assert.ErrorIs(t, s.Impulse(Vec3Of(r3.Vec{})), ErrKindMismatch)
}

// TestSpring_ReadIdempotent verifies reads never mutate state: repeated reads
// at the same clock time return identical values.
func TestSpring_ReadIdempotent(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(clock.Now), WithDamper(0.5), WithSpeed(4))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))

	clock.Advance(0.3)
	first := s.Position().Float()
	for range 5 {
		assert.Equal(t, first, s.Position().Float(), "reads must not advance state")
	}
	firstVel := s.Velocity().Float()
	assert.Equal(t, firstVel, s.Velocity().Float())
}

// TestSpring_Converges verifies the spring reaches its target with vanishing
// velocity after enough simulated time, in every damping regime.
func TestSpring_Converges(t *testing.T) {
	for _, damper := range []float64{0.3, 1, 2} {
		clock := NewManualClock()
		s, err := NewSpring(Float(0), WithClock(clock.Now), WithDamper(damper))
		require.NoError(t, err)
		require.NoError(t, s.SetTarget(Float(10)))

		clock.Advance(200)
		assert.InDelta(t, 10, s.Position().Float(), 1e-6, "damper=%v", damper)
		assert.InDelta(t, 0, s.Velocity().Float(), 1e-6, "damper=%v", damper)
	}
}

// TestSpring_IsAnimating verifies the settled branch returns the exact target
// value rather than the asymptotically close computed position.
func TestSpring_IsAnimating(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(clock.Now))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))

	animating, v := s.IsAnimating(0)
	assert.True(t, animating)
	assert.Less(t, v.Float(), 10.0, "mid-flight value is the computed position")

	clock.Advance(200)
	animating, v = s.IsAnimating(0)
	assert.False(t, animating)
	assert.Equal(t, Float(10), v, "settled value must be the exact target")
}

// TestSpring_WriteSnapshotContinuity verifies mutating parameters mid-flight
// does not jump the observable position: the write commits the computed
// state first.
func TestSpring_WriteSnapshotContinuity(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(clock.Now), WithDamper(0.4), WithSpeed(3))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))

	clock.Advance(0.7)
	before := s.Position().Float()
	beforeVel := s.Velocity().Float()

	s.SetDamper(2)
	assert.Equal(t, before, s.Position().Float(), "position must be continuous across a damper change")
	assert.Equal(t, beforeVel, s.Velocity().Float(), "velocity must be continuous across a damper change")

	s.SetSpeed(20)
	assert.Equal(t, before, s.Position().Float(), "position must be continuous across a speed change")
}

func TestSpring_SetSpeedClampsNegative(t *testing.T) {
	s, err := NewSpring(Float(0))
	require.NoError(t, err)
	s.SetSpeed(-3)
	assert.Equal(t, 0.0, s.Speed())
}

// TestSpring_SetDamperClampsNegative verifies the setter mirrors SetSpeed:
// a negative damping ratio is clamped instead of arming a divergent
// oscillator.
func TestSpring_SetDamperClampsNegative(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(clock.Now))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))

	s.SetDamper(-1)
	assert.Equal(t, 0.0, s.Damper())

	// Undamped motion stays bounded rather than blowing up.
	clock.Advance(100)
	assert.LessOrEqual(t, math.Abs(s.Position().Float()-10), 10.0+1e-9)
}

// TestSpring_SetPositionKeepsVelocity verifies SetPosition teleports the
// position while the committed velocity carries over.
func TestSpring_SetPositionKeepsVelocity(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(clock.Now), WithSpeed(5))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))

	clock.Advance(0.2)
	vel := s.Velocity().Float()
	require.Greater(t, vel, 0.0)

	require.NoError(t, s.SetPosition(Float(100)))
	assert.Equal(t, 100.0, s.Position().Float())
	assert.Equal(t, vel, s.Velocity().Float())
}

// TestSpring_Impulse verifies an impulse adds to the current velocity and a
// resting spring kicked away from its target comes back to it.
func TestSpring_Impulse(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(10), WithClock(clock.Now))
	require.NoError(t, err)

	require.NoError(t, s.Impulse(Float(4)))
	assert.Equal(t, 4.0, s.Velocity().Float())

	clock.Advance(0.5)
	assert.Greater(t, s.Position().Float(), 10.0, "impulse pushes the spring off its target")

	clock.Advance(200)
	assert.InDelta(t, 10, s.Position().Float(), 1e-6, "spring returns to its target")
}

// TestSpring_TimeSkip verifies TimeSkip(dt) leaves the spring in exactly the
// state it would reach by letting the clock advance dt.
func TestSpring_TimeSkip(t *testing.T) {
	build := func(clock *ManualClock) *Spring {
		s, err := NewSpring(Float(0), WithClock(clock.Now), WithDamper(0.6), WithSpeed(2))
		require.NoError(t, err)
		require.NoError(t, s.SetTarget(Float(10)))
		return s
	}

	skipClock := NewManualClock()
	skipped := build(skipClock)
	skipped.TimeSkip(3)

	waitClock := NewManualClock()
	waited := build(waitClock)
	waitClock.Advance(3)

	assert.Equal(t, waited.Position().Float(), skipped.Position().Float())
	assert.Equal(t, waited.Velocity().Float(), skipped.Velocity().Float())
}

// TestSpring_PoseTargetUnwraps verifies a pose target's angle channels are
// unwrapped so the rotation takes the shortest path: retargeting yaw from
// 0.1 to 6.2 rotates backward past zero rather than forward almost a full
// turn.
func TestSpring_PoseTargetUnwraps(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(PoseOf(PoseFromEuler(r3.Vec{}, 0.1, 0, 0)), WithClock(clock.Now))
	require.NoError(t, err)

	require.NoError(t, s.SetTarget(PoseOf(PoseFromEuler(r3.Vec{}, 6.2, 0, 0))))

	clock.Advance(0.5)
	yaw, _, _ := s.Position().Pose().Euler()
	assert.Less(t, yaw, 0.1, "yaw must decrease toward the wrapped equivalent")

	clock.Advance(200)
	yaw, _, _ = s.Position().Pose().Euler()
	assert.InDelta(t, 6.2-2*math.Pi, yaw, 1e-6, "spring settles on the near equivalent angle")
}

// TestSpring_ColorPositionClamped verifies overshooting color springs read
// back displayable channel values.
func TestSpring_ColorPositionClamped(t *testing.T) {
	clock := NewManualClock()
	s, err := NewColorSpring(colorful.Color{}, WithClock(clock.Now), WithDamper(0.05), WithSpeed(10))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(ColorOf(colorful.Color{R: 1, G: 1, B: 1})))

	// Scan for the overshoot peak; a damper of 0.05 swings well past 1.
	for i := range 200 {
		clock.Set(float64(i) * 0.01)
		c := s.Position().Color()
		assert.LessOrEqual(t, c.R, 1.0)
		assert.GreaterOrEqual(t, c.R, 0.0)
	}
}

func TestSpring_SetClock(t *testing.T) {
	first := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(first.Now))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))
	first.Advance(1)
	before := s.Position().Float()

	second := NewManualClock()
	second.Set(1000)
	require.NoError(t, s.SetClock(second.Now))
	assert.Equal(t, before, s.Position().Float(), "clock swap must not move the spring")

	second.Advance(200)
	assert.InDelta(t, 10, s.Position().Float(), 1e-6, "animation continues under the new clock")

	assert.ErrorIs(t, s.SetClock(nil), ErrInvalidConfig)
}

// TestSpring_BindTick verifies the observation loop: while animating every
// bound callback sees the same per-tick snapshot; on settle each receives
// one final callback with the exact target and zero velocity, and Tick
// reports false.
func TestSpring_BindTick(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(clock.Now))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))

	var aPos, bPos []float64
	s.Bind("a", func(p, v Value) { aPos = append(aPos, p.Float()) })
	s.Bind("b", func(p, v Value) { bPos = append(bPos, p.Float()) })
	assert.Equal(t, 2, s.Bound())

	for i := range 5 {
		clock.Advance(0.25)
		assert.True(t, s.Tick(), "still animating at tick %d", i)
	}
	require.Len(t, aPos, 5)
	assert.Equal(t, aPos, bPos, "all observers share one snapshot per tick")

	var finalPos, finalVel Value
	s.Bind("final", func(p, v Value) { finalPos, finalVel = p, v })

	clock.Advance(200)
	assert.False(t, s.Tick(), "settled tick must report stop")
	assert.Equal(t, Float(10), finalPos, "final emit carries the exact target")
	assert.Equal(t, Float(0), finalVel, "final emit carries zero velocity")
	assert.Len(t, aPos, 6, "exactly one final emit per observer")

	// Observation has stopped; further ticks are inert.
	assert.False(t, s.Tick())
	assert.Len(t, aPos, 6)
}

func TestSpring_Unbind(t *testing.T) {
	clock := NewManualClock()
	s, err := NewSpring(Float(0), WithClock(clock.Now))
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(Float(10)))

	calls := 0
	s.Bind("only", func(p, v Value) { calls++ })
	s.Unbind("only")
	assert.Equal(t, 0, s.Bound())

	clock.Advance(0.25)
	assert.False(t, s.Tick(), "no observers, no ticking")
	assert.Equal(t, 0, calls)
}

func TestSpring_BindNilPanics(t *testing.T) {
	s, err := NewSpring(Float(0))
	require.NoError(t, err)
	assert.Panics(t, func() { s.Bind("x", nil) })
}
