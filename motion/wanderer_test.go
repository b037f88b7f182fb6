package motion

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/vmath"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
}

func TestDelta_FrameUnits(t *testing.T) {
	assert.InDelta(t, 1.0, Delta(time.Second/60), 1e-9)
	assert.InDelta(t, 60.0, Delta(time.Second), 1e-9)

	var sum float64
	for i := 0; i < 600; i++ {
		sum += Delta(time.Second / 60)
	}
	assert.InDelta(t, 600.0, sum, 1e-6, "ten seconds of 60 Hz frames must not drift")
}

func TestWanderer_StaysIdleBeforeMinimumThreshold(t *testing.T) {
	w := NewWanderer(vmath.Vec2{X: 50, Y: 50}, seeded(1))
	for i := 0; i < 200; i++ {
		w.Update(1)
	}
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, vmath.Vec2{X: 50, Y: 50}, w.Position())
}

func TestWanderer_BoundedForever(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		w := NewWanderer(vmath.Vec2{X: 12, Y: 88}, seeded(seed))
		for i := 0; i < 20000; i++ {
			w.Update(1 + float64(i%3))
			p := w.Position()
			require.GreaterOrEqual(t, p.X, 10.0)
			require.LessOrEqual(t, p.X, 90.0)
			require.GreaterOrEqual(t, p.Y, 10.0)
			require.LessOrEqual(t, p.Y, 90.0)
		}
	}
}

func TestWanderer_DeterministicWithSeed(t *testing.T) {
	a := NewWanderer(vmath.Vec2{X: 40, Y: 60}, seeded(42))
	b := NewWanderer(vmath.Vec2{X: 40, Y: 60}, seeded(42))
	for i := 0; i < 5000; i++ {
		a.Update(1)
		b.Update(1)
	}
	assert.Equal(t, a.Position(), b.Position())
	assert.Equal(t, a.State(), b.State())
	assert.Equal(t, a.FloatOffset(), b.FloatOffset())
}

func TestWanderer_EventuallyMovesAndArrives(t *testing.T) {
	w := NewWanderer(vmath.Vec2{X: 50, Y: 50}, seeded(3))

	moved := false
	for i := 0; i < 10000 && !moved; i++ {
		w.Update(1)
		moved = w.State() == Moving
	}
	require.True(t, moved, "expected a walk within 10000 frame-units")

	target, ok := w.Target()
	require.True(t, ok)
	assert.LessOrEqual(t, vmath.V2Dist(target, vmath.Vec2{X: 50, Y: 50}), 15*1.5)

	// Max walk is about 21 units at 0.1 per frame-unit
	for i := 0; i < 400 && w.State() == Moving; i++ {
		w.Update(1)
	}
	assert.Equal(t, Idle, w.State())
	assert.Less(t, vmath.V2Dist(w.Position(), target), 0.5)
	_, ok = w.Target()
	assert.False(t, ok)
}

func TestWanderer_LargeDeltaDoesNotOvershoot(t *testing.T) {
	w := NewWanderer(vmath.Vec2{X: 50, Y: 50}, seeded(5))
	for w.State() != Moving {
		w.Update(1)
	}
	target, _ := w.Target()
	w.Update(10000)
	assert.Equal(t, Idle, w.State())
	assert.Less(t, vmath.V2Dist(w.Position(), target), 0.5)
}

func TestWanderer_FloatOffsetIndependentOfPosition(t *testing.T) {
	w := NewWanderer(vmath.Vec2{X: 30, Y: 30}, seeded(9))
	for i := 0; i < 100; i++ {
		w.Update(1)
		off := w.FloatOffset()
		assert.LessOrEqual(t, off, 5.0)
		assert.GreaterOrEqual(t, off, -5.0)
	}
	assert.Equal(t, vmath.Vec2{X: 30, Y: 30}, w.Position())
}

func TestWanderer_ZeroDeltaIsNoop(t *testing.T) {
	w := NewWanderer(vmath.Vec2{X: 30, Y: 30}, seeded(9))
	off := w.FloatOffset()
	w.Update(0)
	assert.Equal(t, off, w.FloatOffset())
}

func TestWanderer_SetPositionCancelsWalk(t *testing.T) {
	w := NewWanderer(vmath.Vec2{X: 50, Y: 50}, seeded(5))
	for w.State() != Moving {
		w.Update(1)
	}
	w.SetPosition(vmath.Vec2{X: 0, Y: 100})
	assert.Equal(t, Idle, w.State())
	assert.Equal(t, vmath.Vec2{X: 10, Y: 90}, w.Position())
}
