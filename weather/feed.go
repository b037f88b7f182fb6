package weather

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/status"
)

// Source is the consumer-side contract: poll the latest complete snapshot
type Source interface {
	Snapshot() *Snapshot
}

// Feed is a mock weather generator that nudges every temperature by ±jitter on
// a fixed wall-clock interval. Snapshots are published atomically so readers on
// the frame goroutine never see a half-applied tick
type Feed struct {
	current  atomic.Pointer[Snapshot]
	interval time.Duration
	jitter   float64

	// rng is only touched by Tick; the mutex serializes manual ticks with Run
	mu  sync.Mutex
	rng *rand.Rand

	log       logging.Logger
	statTicks *atomic.Int64
	statVer   *atomic.Int64
}

// FeedConfig configures a Feed
type FeedConfig struct {
	Interval time.Duration
	Jitter   float64
	Rand     *rand.Rand
	Initial  *Snapshot
	Logger   logging.Logger
	Metrics  *status.Registry
}

// NewFeed creates a feed seeded with cfg.Initial, or the mock dataset when nil
func NewFeed(cfg FeedConfig) *Feed {
	if cfg.Interval <= 0 {
		cfg.Interval = constant.FeedInterval
	}
	if cfg.Jitter == 0 {
		cfg.Jitter = constant.FeedJitter
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if cfg.Initial == nil {
		cfg.Initial = MockSnapshot()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Noop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}

	f := &Feed{
		interval:  cfg.Interval,
		jitter:    cfg.Jitter,
		rng:       cfg.Rand,
		log:       cfg.Logger.With(logging.String("component", "weather.feed")),
		statTicks: cfg.Metrics.Ints.Get(status.FeedTicks),
		statVer:   cfg.Metrics.Ints.Get(status.FeedVersion),
	}
	f.current.Store(cfg.Initial)
	f.statVer.Store(int64(cfg.Initial.Version()))
	return f
}

// Snapshot returns the latest complete snapshot
func (f *Feed) Snapshot() *Snapshot {
	return f.current.Load()
}

// Tick applies one jitter step: each temperature moves by +jitter or -jitter
// with equal probability and is rounded to one decimal
func (f *Feed) Tick() *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := f.current.Load().mapObservations(func(o Observation) Observation {
		step := -f.jitter
		if f.rng.Float64() > 0.5 {
			step = f.jitter
		}
		o.TempC = roundTenth(o.TempC + step)
		return o
	})
	f.current.Store(next)

	f.statTicks.Add(1)
	f.statVer.Store(int64(next.Version()))
	return next
}

// Run ticks on the feed interval until ctx is canceled. The ticker is stopped on return
func (f *Feed) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.log.Debug(ctx, "weather feed started", logging.Any("interval", f.interval))
	for {
		select {
		case <-ctx.Done():
			f.log.Debug(ctx, "weather feed stopped")
			return nil
		case <-ticker.C:
			snap := f.Tick()
			f.log.Debug(ctx, "weather feed tick", logging.Int("version", int(snap.Version())))
		}
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
