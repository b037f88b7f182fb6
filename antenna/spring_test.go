package antenna

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rest = -35.0

func TestSpring_StartsAtRest(t *testing.T) {
	s := NewSpring()
	assert.True(t, s.AtRest())
	s.Step()
	assert.Equal(t, rest, s.Angle())
	assert.Equal(t, 0.0, s.Velocity())
}

func TestSpring_SingleStep(t *testing.T) {
	s := NewSpring()
	s.Set(-25, 0)
	s.Step()
	// v = (0 - 0.5*10) * 0.88 = -4.4
	assert.InDelta(t, -4.4, s.Velocity(), 1e-12)
	assert.InDelta(t, -29.4, s.Angle(), 1e-12)
}

func TestSpring_ConvergesExactlyToRest(t *testing.T) {
	starts := []struct{ angle, velocity float64 }{
		{-80, 0}, {20, 0}, {-35, 10}, {500, -50}, {-35.04, 0.001}, {-1000, 1000},
	}
	for _, st := range starts {
		s := NewSpring()
		s.Set(st.angle, st.velocity)
		steps := 0
		for !s.AtRest() && steps < 2000 {
			s.Step()
			steps++
		}
		require.True(t, s.AtRest(), "start %+v did not settle", st)
		assert.Equal(t, rest, s.Angle())
		assert.Equal(t, 0.0, s.Velocity())
	}
}

func TestSpring_EnvelopeDecreases(t *testing.T) {
	s := NewSpring()
	s.Set(10, 0)

	const window = 40
	prevPeak := math.Inf(1)
	for w := 0; w < 5; w++ {
		peak := 0.0
		for i := 0; i < window; i++ {
			s.Step()
			peak = math.Max(peak, math.Abs(s.Angle()-rest))
		}
		assert.LessOrEqual(t, peak, prevPeak)
		prevPeak = peak
	}
}

func TestSpring_DragClampsAndZeroesVelocity(t *testing.T) {
	s := NewSpring()
	s.Set(-35, 3)

	s.Grab()
	assert.True(t, s.Dragging())

	// Straight up
	s.Drag(0, 10)
	assert.InDelta(t, 0.0, s.Angle(), 1e-12)
	assert.Equal(t, 0.0, s.Velocity())

	// Far right clamps at +20
	s.Drag(10, 0)
	assert.Equal(t, 20.0, s.Angle())

	// Far left and below clamps at -80
	s.Drag(-10, -10)
	assert.Equal(t, -80.0, s.Angle())

	// 45 degrees left
	s.Drag(-5, 5)
	assert.InDelta(t, -45.0, s.Angle(), 1e-9)

	// Spring is suspended while held
	s.Step()
	assert.InDelta(t, -45.0, s.Angle(), 1e-9)

	s.Release()
	assert.False(t, s.Dragging())
	s.Step()
	assert.Greater(t, s.Angle(), -45.0)
}

func TestSpring_BoingRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := NewSpring()
	for i := 0; i < 200; i++ {
		s.Boing(rng)
		assert.GreaterOrEqual(t, s.Angle(), -65.0)
		assert.LessOrEqual(t, s.Angle(), -5.0)
		assert.GreaterOrEqual(t, s.Velocity(), -2.5)
		assert.LessOrEqual(t, s.Velocity(), 2.5)
	}
}

func TestSpring_BoingWhileDragging(t *testing.T) {
	s := NewSpring()
	s.Grab()
	s.Drag(0, 1)
	s.Boing(rand.New(rand.NewPCG(3, 4)))
	assert.True(t, s.Dragging())
	assert.NotEqual(t, 0.0, s.Angle())
}
