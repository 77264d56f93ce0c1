package motion

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// NewScalarSpring creates a spring over a single scalar channel.
func NewScalarSpring(initial float64, opts ...SpringOption) (*Spring, error) {
	return NewSpring(Float(initial), opts...)
}

// NewVec2Spring creates a spring over a 2D vector.
func NewVec2Spring(initial r2.Vec, opts ...SpringOption) (*Spring, error) {
	return NewSpring(Vec2Of(initial), opts...)
}

// NewVec3Spring creates a spring over a 3D vector.
func NewVec3Spring(initial r3.Vec, opts ...SpringOption) (*Spring, error) {
	return NewSpring(Vec3Of(initial), opts...)
}

// NewDimSpring creates a spring over a scale/offset pair.
func NewDimSpring(initial Dim, opts ...SpringOption) (*Spring, error) {
	return NewSpring(DimOf(initial), opts...)
}

// NewDim2Spring creates a spring over a 2D scale/offset pair.
func NewDim2Spring(initial Dim2, opts ...SpringOption) (*Spring, error) {
	return NewSpring(Dim2Of(initial), opts...)
}

// NewPoseSpring creates a spring over an oriented pose. Position and angle
// channels animate independently; retargeting unwraps angles to the
// shortest path.
func NewPoseSpring(initial Pose, opts ...SpringOption) (*Spring, error) {
	return NewSpring(PoseOf(initial), opts...)
}

// NewColorSpring creates a spring over an RGB color. Read positions are
// clamped to displayable [0, 1] channels.
func NewColorSpring(initial colorful.Color, opts ...SpringOption) (*Spring, error) {
	return NewSpring(ColorOf(initial), opts...)
}

// SettleTime estimates how long a spring with the given parameters needs
// before its position error decays below epsilon, based on the slowest
// characteristic decay rate of the damping regime. It is an order-of-
// magnitude planning figure, not an exact bound; overshoot can keep an
// underdamped spring animating slightly longer. Returns +Inf when speed or
// epsilon makes decay impossible.
func SettleTime(damper, speed, epsilon float64) float64 {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	if damper <= 0 || speed <= 0 || epsilon >= 1 {
		return math.Inf(1)
	}

	rate := damper * speed
	if damper > 1 {
		// Overdamped: the slow root dominates the tail.
		rate = (damper - math.Sqrt(damper*damper-1)) * speed
	}
	return -math.Log(epsilon) / rate
}

// Trajectory simulates a spring released from initial toward target and
// returns steps+1 position samples at dt intervals, starting at t=0. It is
// a one-shot helper for offline plotting and the cmd tools; for live
// animation drive a Spring with its own clock instead.
func Trajectory(initial, target Value, damper, speed, dt float64, steps int) ([]Value, error) {
	clock := NewManualClock()
	s, err := NewSpring(initial,
		WithClock(clock.Now),
		WithDamper(damper),
		WithSpeed(speed),
	)
	if err != nil {
		return nil, err
	}
	if err := s.SetTarget(target); err != nil {
		return nil, err
	}

	out := make([]Value, 0, steps+1)
	out = append(out, s.Position())
	for range steps {
		clock.Advance(dt)
		out = append(out, s.Position())
	}
	return out, nil
}
