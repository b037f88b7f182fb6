package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider supplies the current time to the frame loop and scheduler
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Tests step it by frames or durations
// and then run Scheduler.Advance to fire due timers
type ManualClock struct {
	base   time.Time
	offset atomic.Int64
}

// NewManualClock starts the clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{base: start}
}

func (c *ManualClock) Now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

// Advance moves the clock forward by d and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	return c.base.Add(time.Duration(c.offset.Add(int64(d))))
}

// AdvanceFrames moves the clock forward by n frame intervals
func (c *ManualClock) AdvanceFrames(n int, interval time.Duration) time.Time {
	return c.Advance(time.Duration(n) * interval)
}
