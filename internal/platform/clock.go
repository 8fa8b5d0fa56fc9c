package platform

import "time"

// Clock is a monotonic time source for frame timing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process monotonic clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock advanced explicitly. Used by tests and replays.
type ManualClock struct {
	T time.Time
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
