package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/status"
)

// maxFrameDelta caps dt after a stall (suspend, debugger) so simulations do not jump
const maxFrameDelta = 250 * time.Millisecond

// FrameFunc is called once per frame with the frame time and elapsed time since the previous frame
type FrameFunc func(now time.Time, dt time.Duration)

// EventHandler processes one terminal event; returning false stops the loop
type EventHandler func(ev tcell.Event) bool

// EventSource is the blocking event provider, satisfied by tcell.Screen.
// PollEvent must return nil once the source is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

type frameSub struct {
	id uint64
	fn FrameFunc
}

// Loop is the single-threaded cooperative driver: input handlers, scheduler timers
// and frame subscribers all run on the goroutine executing Run, never concurrently
type Loop struct {
	source   EventSource
	clock    TimeProvider
	sched    *Scheduler
	interval time.Duration

	handler EventHandler
	subs    []frameSub
	nextSub uint64

	lastFrame time.Time
	closed    bool

	statFrames  *atomic.Int64
	statTimers  *atomic.Int64
	statFrameDt *status.AtomicFloat
}

// NewLoop creates a frame loop ticking at interval
func NewLoop(source EventSource, clock TimeProvider, interval time.Duration, reg *status.Registry) *Loop {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loop{
		source:      source,
		clock:       clock,
		sched:       NewScheduler(clock),
		interval:    interval,
		statFrames:  reg.Ints.Get(status.FramesTotal),
		statTimers:  reg.Ints.Get(status.TimersPending),
		statFrameDt: reg.Floats.Get(status.FrameDuration),
	}
}

// Scheduler returns the loop-owned timer scheduler
func (l *Loop) Scheduler() *Scheduler {
	return l.sched
}

// SetEventHandler installs the input handler, must be called before Run
func (l *Loop) SetEventHandler(h EventHandler) {
	l.handler = h
}

// OnFrame subscribes fn to every frame. The returned func unsubscribes and is idempotent
func (l *Loop) OnFrame(fn FrameFunc) (unsubscribe func()) {
	if l.closed {
		return func() {}
	}
	l.nextSub++
	id := l.nextSub
	l.subs = append(l.subs, frameSub{id: id, fn: fn})
	return func() {
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of active frame subscriptions
func (l *Loop) Subscribers() int {
	return len(l.subs)
}

// Step runs one frame: due timers fire first, then subscribers in registration order
func (l *Loop) Step() {
	if l.closed {
		return
	}
	now := l.clock.Now()
	dt := l.interval
	if !l.lastFrame.IsZero() {
		dt = now.Sub(l.lastFrame)
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	l.lastFrame = now

	l.sched.Advance()

	// Subscribers may unsubscribe themselves or others mid-frame
	subs := make([]frameSub, len(l.subs))
	copy(subs, l.subs)
	for _, s := range subs {
		if !l.subscribed(s.id) {
			continue
		}
		s.fn(now, dt)
	}

	l.statFrames.Add(1)
	l.statTimers.Store(int64(l.sched.Pending()))
	l.statFrameDt.Set(dt.Seconds())
}

func (l *Loop) subscribed(id uint64) bool {
	for _, s := range l.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// Dispatch hands one event to the handler on the caller's goroutine
func (l *Loop) Dispatch(ev tcell.Event) bool {
	if l.handler == nil || ev == nil {
		return true
	}
	return l.handler(ev)
}

// Run drives frames and input until ctx is canceled or the handler asks to quit.
// Every subscription and timer is released before Run returns
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 256)
	Go(func() {
		for {
			ev := l.source.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !l.Dispatch(ev) {
				return nil
			}
		case <-ticker.C:
			l.Step()
		}
	}
}

// Close cancels all timers and drops all frame subscriptions
func (l *Loop) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.sched.Close()
	l.subs = nil
	l.statTimers.Store(0)
}
