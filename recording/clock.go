package recording

import "time"

// Clock supplies the playback time base in seconds. Implementations must
// never go backwards.
type Clock interface {
	Now() float64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() float64

func (f ClockFunc) Now() float64 {
	return f()
}

// RealClock counts seconds since it was created, using the monotonic clock.
type RealClock struct {
	start time.Time
}

func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

func (c *RealClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to. Used to drive playback at fixed
// steps in tests and in the fixed-rate server loop.
type ManualClock struct {
	now float64
}

func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() float64 {
	return c.now
}

// Set moves the clock to t. Moving backwards is ignored.
func (c *ManualClock) Set(t float64) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}
