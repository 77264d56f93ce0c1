package motion

import (
	"fmt"

	"github.com/tphakala/go-motion/internal/engine"
	"github.com/tphakala/go-motion/internal/orient"
)

// Spring simulates a damped harmonic oscillator over any springable value
// kind. The spring never advances state on its own: the current position
// and velocity are recomputed from the closed-form solution on every read,
// and every write first snapshots the computed state before applying the
// change. Reads are therefore idempotent; writes implicitly catch the
// spring up to the current time.
//
// A Spring is exclusively owned by its holder. All methods must be called
// from a single logical thread of control; there is no internal locking.
type Spring struct {
	kind Kind

	// Snapshot state: position/velocity at time0. Current state is always
	// derived from these plus the elapsed time, never stored.
	pos0  channels
	vel0  channels
	tgt   channels
	time0 float64

	damper float64
	speed  float64
	clock  Clock

	binds     map[string]Callback
	observing bool
}

// Callback observes a spring's state once per tick while it animates.
type Callback func(position, velocity Value)

// SpringOption configures a spring at construction.
type SpringOption func(*Spring) error

// WithClock replaces the default monotonic clock. Useful for deterministic
// simulation; see ManualClock.
func WithClock(clock Clock) SpringOption {
	return func(s *Spring) error {
		if clock == nil {
			return fmt.Errorf("%w: nil clock", ErrInvalidConfig)
		}
		s.clock = clock
		return nil
	}
}

// WithDamper sets the initial damping ratio. Values below 0 are invalid
// (negative damping pumps energy into the oscillator).
func WithDamper(damper float64) SpringOption {
	return func(s *Spring) error {
		if damper < 0 {
			return fmt.Errorf("%w: damper must be >= 0, got %v", ErrInvalidConfig, damper)
		}
		s.damper = damper
		return nil
	}
}

// WithSpeed sets the initial angular frequency. Negative speeds are
// invalid.
func WithSpeed(speed float64) SpringOption {
	return func(s *Spring) error {
		if speed < 0 {
			return fmt.Errorf("%w: speed must be >= 0, got %v", ErrInvalidConfig, speed)
		}
		s.speed = speed
		return nil
	}
}

// NewSpring creates a spring at rest at the initial value: position and
// target equal initial, velocity is zero, damper and speed are 1.
func NewSpring(initial Value, opts ...SpringOption) (*Spring, error) {
	if initial.kind < 0 || initial.kind >= kindCount {
		return nil, fmt.Errorf("%w: unsupported value kind %d", ErrInvalidConfig, int(initial.kind))
	}

	s := &Spring{
		kind:   initial.kind,
		pos0:   initial.ch,
		tgt:    initial.ch,
		damper: DefaultDamper,
		speed:  DefaultSpeed,
		clock:  DefaultClock,
		binds:  make(map[string]Callback),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.time0 = s.clock()
	return s, nil
}

// Kind returns the spring's fixed value kind.
func (s *Spring) Kind() Kind {
	return s.kind
}

// Damper returns the current damping ratio.
func (s *Spring) Damper() float64 {
	return s.damper
}

// Speed returns the current angular frequency.
func (s *Spring) Speed() float64 {
	return s.speed
}

// ClockFunc returns the spring's clock.
func (s *Spring) ClockFunc() Clock {
	return s.clock
}

// compute evaluates the closed form at the given time without mutating any
// stored state.
func (s *Spring) compute(now float64) (pos, vel channels) {
	c := engine.Coefficients(s.damper, s.speed, now-s.time0)
	for i := range kindTable[s.kind].channels {
		pos[i], vel[i] = c.Advance(s.pos0[i], s.vel0[i], s.tgt[i])
	}
	return pos, vel
}

// snapshot commits the computed state at now as the new initial conditions.
// Every mutator calls this before applying its change.
func (s *Spring) snapshot(now float64) {
	s.pos0, s.vel0 = s.compute(now)
	s.time0 = now
}

// Position returns the current position, computed from the elapsed time.
func (s *Spring) Position() Value {
	pos, _ := s.compute(s.clock())
	return composeValue(s.kind, pos)
}

// Velocity returns the current velocity, computed from the elapsed time.
func (s *Spring) Velocity() Value {
	_, vel := s.compute(s.clock())
	return Value{kind: s.kind, ch: vel}
}

// Target returns the value the spring is animating toward.
func (s *Spring) Target() Value {
	return composeValue(s.kind, s.tgt)
}

// SetPosition snapshots the current state and then overwrites the position.
// Velocity is preserved.
func (s *Spring) SetPosition(v Value) error {
	if v.kind != s.kind {
		return fmt.Errorf("%w: spring is %s, got %s", ErrKindMismatch, s.kind, v.kind)
	}
	s.snapshot(s.clock())
	s.pos0 = v.ch
	return nil
}

// SetVelocity snapshots the current state and then overwrites the velocity.
func (s *Spring) SetVelocity(v Value) error {
	if v.kind != s.kind {
		return fmt.Errorf("%w: spring is %s, got %s", ErrKindMismatch, s.kind, v.kind)
	}
	s.snapshot(s.clock())
	s.vel0 = v.ch
	return nil
}

// SetTarget snapshots the current state and then retargets the spring. For
// pose springs each target angle channel is first unwrapped to the
// equivalent angle nearest the snapshotted position, so rotations always
// take the shortest path.
func (s *Spring) SetTarget(v Value) error {
	if v.kind != s.kind {
		return fmt.Errorf("%w: spring is %s, got %s", ErrKindMismatch, s.kind, v.kind)
	}
	s.snapshot(s.clock())
	s.tgt = v.ch
	ops := kindTable[s.kind]
	for i := range ops.channels {
		if ops.angular[i] {
			s.tgt[i] = orient.ShortestAngle(v.ch[i], s.pos0[i])
		}
	}
	return nil
}

// SetDamper snapshots the current state and then changes the damping ratio.
// Negative input is clamped to 0, matching SetSpeed; a negative damping
// ratio would pump energy into the oscillator.
func (s *Spring) SetDamper(damper float64) {
	s.snapshot(s.clock())
	if damper < 0 {
		damper = 0
	}
	s.damper = damper
}

// SetSpeed snapshots the current state and then changes the angular
// frequency. Negative input is clamped to 0.
func (s *Spring) SetSpeed(speed float64) {
	s.snapshot(s.clock())
	if speed < 0 {
		speed = 0
	}
	s.speed = speed
}

// SetClock snapshots the current state under the old clock and then swaps
// clocks, resetting the epoch to the new clock's current reading.
func (s *Spring) SetClock(clock Clock) error {
	if clock == nil {
		return fmt.Errorf("%w: nil clock", ErrInvalidConfig)
	}
	s.snapshot(s.clock())
	s.clock = clock
	s.time0 = clock()
	return nil
}

// Impulse snapshots the current state and adds delta to the velocity
// channel-wise. For pose springs the delta pose is decomposed into its six
// channels first.
func (s *Spring) Impulse(delta Value) error {
	if delta.kind != s.kind {
		return fmt.Errorf("%w: spring is %s, got %s", ErrKindMismatch, s.kind, delta.kind)
	}
	s.snapshot(s.clock())
	for i := range kindTable[s.kind].channels {
		s.vel0[i] += delta.ch[i]
	}
	return nil
}

// TimeSkip fast-forwards the simulated state by dt seconds: the state the
// spring would reach at now+dt becomes the state now. Wall-clock
// expectations are unchanged; subsequent reads continue from the actual
// current time.
func (s *Spring) TimeSkip(dt float64) {
	now := s.clock()
	s.pos0, s.vel0 = s.compute(now + dt)
	s.time0 = now
}

// IsAnimating reports whether any channel of the position error or velocity
// still exceeds epsilon (DefaultEpsilon when epsilon <= 0). While animating
// it returns the current position; once settled it returns the exact
// target, so consumers can snap to the precise resting value.
func (s *Spring) IsAnimating(epsilon float64) (bool, Value) {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	pos, vel := s.compute(s.clock())
	if settled(s.kind, pos, s.tgt, vel, epsilon) {
		return false, composeValue(s.kind, s.tgt)
	}
	return true, composeValue(s.kind, pos)
}

// Bind registers a named observer and starts observation. Each Tick invokes
// every bound callback with one shared snapshot while the spring animates;
// when it settles, observers receive one final callback with the exact
// target and zero velocity, and observation stops. Rebinding an existing
// label replaces its callback.
func (s *Spring) Bind(label string, fn Callback) {
	if fn == nil {
		panic("motion: Bind with nil callback")
	}
	s.binds[label] = fn
	s.observing = true
}

// Unbind removes a named observer. Removing the last observer lets the
// observation loop terminate on its own.
func (s *Spring) Unbind(label string) {
	delete(s.binds, label)
	if len(s.binds) == 0 {
		s.observing = false
	}
}

// Bound returns the number of registered observers.
func (s *Spring) Bound() int {
	return len(s.binds)
}

// Tick drives the observation loop. The host calls it once per frame or
// simulation step. It computes one (position, velocity) snapshot, delivers
// it to every bound callback, and reports whether observation should
// continue. After the spring settles, one final callback delivers the exact
// target with zero velocity and Tick returns false until a new Bind or a
// state change re-arms a settled spring via Bind.
//
// Callback invocation order across labels is unspecified.
func (s *Spring) Tick() bool {
	if !s.observing || len(s.binds) == 0 {
		return false
	}

	pos, vel := s.compute(s.clock())
	if settled(s.kind, pos, s.tgt, vel, DefaultEpsilon) {
		// Guaranteed final emit with converged values, so observers never
		// miss the resting state under variable tick timing.
		target := composeValue(s.kind, s.tgt)
		zero := zeroValue(s.kind)
		for _, fn := range s.binds {
			fn(target, zero)
		}
		s.observing = false
		return false
	}

	position := composeValue(s.kind, pos)
	velocity := Value{kind: s.kind, ch: vel}
	for _, fn := range s.binds {
		fn(position, velocity)
	}
	return true
}
