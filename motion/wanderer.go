// Package motion drives the per-pet idle/wander state machine and float bob
package motion

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/vmath"
)

// State is the wander state machine's current state
type State int

const (
	Idle State = iota
	Moving
)

func (s State) String() string {
	if s == Moving {
		return "moving"
	}
	return "idle"
}

// Wanderer owns one pet's autonomous motion. All quantities are in frame-units
// (1/60 s) and percentage-of-viewport coordinates.
// Not safe for concurrent use; advanced from the frame goroutine only
type Wanderer struct {
	pos    vmath.Vec2
	target vmath.Vec2
	state  State

	idle      float64
	threshold float64
	phase     float64

	rng *rand.Rand
}

// NewWanderer starts an idle wanderer at pos with a random float phase
func NewWanderer(pos vmath.Vec2, rng *rand.Rand) *Wanderer {
	w := &Wanderer{
		pos: vmath.V2Clamp(pos, constant.WanderMin, constant.WanderMax),
		rng: rng,
	}
	w.phase = rng.Float64() * constant.FloatPhaseSeed
	w.drawThreshold()
	return w
}

func (w *Wanderer) drawThreshold() {
	w.threshold = constant.IdleThresholdMin + w.rng.Float64()*constant.IdleThresholdSpan
}

// Update advances the state machine and float phase by delta frame-units
func (w *Wanderer) Update(delta float64) {
	if delta <= 0 {
		return
	}
	w.phase += constant.FloatPhaseRate * delta

	switch w.state {
	case Idle:
		w.idle += delta
		if w.idle <= w.threshold {
			return
		}
		// Trial fires once per threshold crossing; the timer resets either way
		if w.rng.Float64() > 1-constant.MoveChance {
			w.target = vmath.Vec2{
				X: vmath.Clamp(w.pos.X+vmath.Signed(w.rng.Float64(), 2*constant.WanderOffset), constant.WanderMin, constant.WanderMax),
				Y: vmath.Clamp(w.pos.Y+vmath.Signed(w.rng.Float64(), 2*constant.WanderOffset), constant.WanderMin, constant.WanderMax),
			}
			w.state = Moving
		}
		w.idle = 0
		w.drawThreshold()

	case Moving:
		d := vmath.V2Sub(w.target, w.pos)
		dist := vmath.V2Mag(d)
		if dist < constant.ArrivalEpsilon {
			w.arrive()
			return
		}
		step := constant.WanderSpeed * delta
		if step >= dist {
			w.pos = w.target
			w.arrive()
			return
		}
		w.pos = vmath.V2Add(w.pos, vmath.V2Scale(d, step/dist))
	}
}

func (w *Wanderer) arrive() {
	w.state = Idle
	w.target = vmath.Vec2{}
	w.idle = 0
	w.drawThreshold()
}

// Position returns the logical position, excluding the float offset
func (w *Wanderer) Position() vmath.Vec2 {
	return w.pos
}

// SetPosition moves the wanderer and cancels any walk in progress
func (w *Wanderer) SetPosition(p vmath.Vec2) {
	w.pos = vmath.V2Clamp(p, constant.WanderMin, constant.WanderMax)
	if w.state == Moving {
		w.arrive()
	}
}

// Target returns the current walk target, ok is false while idle
func (w *Wanderer) Target() (vmath.Vec2, bool) {
	return w.target, w.state == Moving
}

// State returns the current state
func (w *Wanderer) State() State {
	return w.state
}

// FloatOffset is the vertical bob applied at render time only
func (w *Wanderer) FloatOffset() float64 {
	return constant.FloatAmplitude * math.Sin(w.phase)
}

// Delta converts elapsed wall time into frame-units
func Delta(dt time.Duration) float64 {
	return dt.Seconds() * constant.FrameRate
}
