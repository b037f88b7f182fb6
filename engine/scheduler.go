package engine

import (
	"sort"
	"time"
)

// Timer is a cancelable callback registration owned by a Scheduler
type Timer struct {
	id       uint64
	deadline time.Time
	period   time.Duration // zero for one-shot timers
	fn       func()
	sched    *Scheduler
}

// Stop cancels the timer. Returns false if it already fired (one-shot) or was stopped
func (t *Timer) Stop() bool {
	if t == nil || t.sched == nil {
		return false
	}
	_, ok := t.sched.timers[t.id]
	delete(t.sched.timers, t.id)
	t.sched = nil
	return ok
}

// Active reports whether the timer is still registered
func (t *Timer) Active() bool {
	if t == nil || t.sched == nil {
		return false
	}
	_, ok := t.sched.timers[t.id]
	return ok
}

// Scheduler fires timers from the frame goroutine.
// Not safe for concurrent use: registration, cancellation and Advance all happen
// on the goroutine that owns the frame loop, so callbacks never race with input handling
type Scheduler struct {
	clock  TimeProvider
	timers map[uint64]*Timer
	nextID uint64
	closed bool
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock:  clock,
		timers: make(map[uint64]*Timer),
	}
}

// Now returns the scheduler's notion of the current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After registers fn to run once, d after now
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, fn)
}

// Every registers fn to run every period, first firing one period from now
func (s *Scheduler) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) *Timer {
	t := &Timer{
		deadline: s.clock.Now().Add(d),
		period:   period,
		fn:       fn,
	}
	// Registrations after Close are inert
	if s.closed {
		return t
	}
	s.nextID++
	t.id = s.nextID
	t.sched = s
	s.timers[t.id] = t
	return t
}

// Advance fires every timer whose deadline has passed, in deadline order.
// A repeating timer fires at most once per call. Returns the number fired
func (s *Scheduler) Advance() int {
	if s.closed || len(s.timers) == 0 {
		return 0
	}

	now := s.clock.Now()
	due := make([]*Timer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].id < due[j].id
		}
		return due[i].deadline.Before(due[j].deadline)
	})

	fired := 0
	for _, t := range due {
		// An earlier callback in this batch may have stopped it
		if _, ok := s.timers[t.id]; !ok {
			continue
		}
		if t.period > 0 {
			t.deadline = t.deadline.Add(t.period)
			if !t.deadline.After(now) {
				t.deadline = now.Add(t.period)
			}
		} else {
			delete(s.timers, t.id)
			t.sched = nil
		}
		t.fn()
		fired++
	}
	return fired
}

// Pending returns the number of registered timers
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Close cancels every outstanding timer; later registrations never fire
func (s *Scheduler) Close() {
	for id, t := range s.timers {
		t.sched = nil
		delete(s.timers, id)
	}
	s.closed = true
}
