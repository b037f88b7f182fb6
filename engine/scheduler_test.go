package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() (*Scheduler, *ManualClock) {
	clock := NewManualClock(time.Unix(1_700_000_000, 0))
	return NewScheduler(clock), clock
}

func TestScheduler_AfterFiresOnceAtDeadline(t *testing.T) {
	s, clock := newTestScheduler()
	fired := 0
	timer := s.After(5*time.Second, func() { fired++ })

	clock.Advance(4 * time.Second)
	assert.Equal(t, 0, s.Advance())
	assert.True(t, timer.Active())

	clock.Advance(time.Second)
	assert.Equal(t, 1, s.Advance())
	assert.Equal(t, 1, fired)
	assert.False(t, timer.Active())

	clock.Advance(10 * time.Second)
	s.Advance()
	assert.Equal(t, 1, fired, "one-shot timer must not fire again")
}

func TestScheduler_StopCancelsPending(t *testing.T) {
	s, clock := newTestScheduler()
	fired := false
	timer := s.After(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing to cancel")

	clock.Advance(2 * time.Second)
	s.Advance()
	assert.False(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_EveryRepeats(t *testing.T) {
	s, clock := newTestScheduler()
	count := 0
	s.Every(time.Second, func() { count++ })

	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		s.Advance()
	}
	assert.Equal(t, 5, count)

	// A long stall fires once, not once per missed period
	clock.Advance(10 * time.Second)
	s.Advance()
	assert.Equal(t, 6, count)
}

func TestScheduler_DeadlineOrder(t *testing.T) {
	s, clock := newTestScheduler()
	var order []string
	s.After(3*time.Second, func() { order = append(order, "c") })
	s.After(1*time.Second, func() { order = append(order, "a") })
	s.After(2*time.Second, func() { order = append(order, "b") })

	clock.Advance(5 * time.Second)
	require.Equal(t, 3, s.Advance())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestScheduler_CallbackStopsLaterTimer(t *testing.T) {
	s, clock := newTestScheduler()
	var second *Timer
	secondFired := false
	s.After(time.Second, func() { second.Stop() })
	second = s.After(2*time.Second, func() { secondFired = true })

	clock.Advance(3 * time.Second)
	s.Advance()
	assert.False(t, secondFired)
}

func TestScheduler_CloseCancelsEverything(t *testing.T) {
	s, clock := newTestScheduler()
	fired := 0
	a := s.After(time.Second, func() { fired++ })
	s.Every(time.Second, func() { fired++ })

	s.Close()
	assert.Equal(t, 0, s.Pending())
	assert.False(t, a.Active())

	late := s.After(time.Second, func() { fired++ })
	assert.False(t, late.Active(), "registration after close is inert")

	clock.Advance(5 * time.Second)
	s.Advance()
	assert.Equal(t, 0, fired)
}

func TestManualClock_Advance(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	clock := NewManualClock(start)
	assert.Equal(t, start, clock.Now())

	assert.Equal(t, start.Add(2*time.Second), clock.Advance(2*time.Second))
	assert.Equal(t, start.Add(2*time.Second+3*time.Millisecond), clock.AdvanceFrames(3, time.Millisecond))
	assert.Equal(t, start.Add(2*time.Second+3*time.Millisecond), clock.Now())
}
