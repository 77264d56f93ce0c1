package motion

import "time"

// Clock returns the current time in seconds. Springs only ever consume
// differences of successive readings, so any monotonic origin works.
type Clock func() float64

// processEpoch anchors the default clock; time.Since reads the monotonic
// component of time.Time.
var processEpoch = time.Now()

// DefaultClock returns monotonic seconds since process start.
func DefaultClock() float64 {
	return time.Since(processEpoch).Seconds()
}

// ManualClock is a hand-stepped Clock source for deterministic simulation
// and testing. The zero value starts at time 0.
type ManualClock struct {
	now float64
}

// NewManualClock returns a manual clock starting at time 0.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the current manual time. Pass the method itself as a spring's
// Clock.
func (c *ManualClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.now += dt
}

// Set jumps the clock to an absolute time.
func (c *ManualClock) Set(t float64) {
	c.now = t
}
