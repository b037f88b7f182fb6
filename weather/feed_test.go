package weather

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestMockSnapshot_OrderAndLookup(t *testing.T) {
	snap := MockSnapshot()
	names := snap.Names()
	require.Len(t, names, 18)
	assert.Equal(t, "France", names[0])
	assert.Equal(t, "Japan", names[1])
	assert.Equal(t, "Italy", names[17])

	obs, ok := snap.Lookup("FRANCE")
	require.True(t, ok)
	assert.Equal(t, Clear, obs.Condition)

	_, ok = snap.Lookup("atlantis")
	assert.False(t, ok)
}

func TestFeed_TickJittersEveryTemperature(t *testing.T) {
	feed := NewFeed(FeedConfig{Rand: seeded()})
	before := feed.Snapshot()

	after := feed.Tick()
	assert.Equal(t, before.Version()+1, after.Version())
	assert.Equal(t, before.Names(), after.Names())

	for _, name := range before.Names() {
		a, _ := before.Get(name)
		b, _ := after.Get(name)
		delta := math.Abs(b.TempC - a.TempC)
		assert.InDelta(t, 0.2, delta, 1e-9, name)
		assert.Equal(t, a.Condition, b.Condition)
		assert.Equal(t, a.Humidity, b.Humidity)
		// Rounded to one decimal
		assert.InDelta(t, math.Round(b.TempC*10)/10, b.TempC, 1e-12)
	}
}

func TestFeed_SnapshotsAreImmutable(t *testing.T) {
	feed := NewFeed(FeedConfig{Rand: seeded()})
	first := feed.Snapshot()
	firstTemp, _ := first.Get("Japan")

	for i := 0; i < 5; i++ {
		feed.Tick()
	}
	again, _ := first.Get("Japan")
	assert.Equal(t, firstTemp, again, "an old snapshot must not change after ticks")
}

func TestFeed_DeterministicWithSeed(t *testing.T) {
	a := NewFeed(FeedConfig{Rand: seeded()})
	b := NewFeed(FeedConfig{Rand: seeded()})
	for i := 0; i < 10; i++ {
		a.Tick()
		b.Tick()
	}
	for _, name := range a.Snapshot().Names() {
		oa, _ := a.Snapshot().Get(name)
		ob, _ := b.Snapshot().Get(name)
		assert.Equal(t, oa.TempC, ob.TempC, name)
	}
}

func TestFeed_ConcurrentReadersSeeCompleteSnapshots(t *testing.T) {
	feed := NewFeed(FeedConfig{Rand: seeded()})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			feed.Tick()
		}
	}()
	for i := 0; i < 200; i++ {
		snap := feed.Snapshot()
		assert.Equal(t, 18, snap.Len())
	}
	wg.Wait()
	assert.Equal(t, uint64(200), feed.Snapshot().Version())
}

func TestFeed_RunStopsOnCancel(t *testing.T) {
	feed := NewFeed(FeedConfig{Interval: time.Millisecond, Rand: seeded()})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- feed.Run(ctx) }()

	require.Eventually(t, func() bool { return feed.Snapshot().Version() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("feed did not stop")
	}
}

func TestParseCondition(t *testing.T) {
	for _, c := range Conditions() {
		got, err := ParseCondition(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCondition("partlycloudy")
	require.NoError(t, err)
	assert.Equal(t, PartlyCloudy, got)

	_, err = ParseCondition("Sandstorm")
	assert.Error(t, err)
}
