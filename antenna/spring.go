// Package antenna simulates the radio antenna: a one-degree-of-freedom
// spring-damper that relaxes toward its rest angle and can be grabbed or flicked
package antenna

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/vmath"
)

// Spring is the antenna state. Angles are in degrees, velocity in degrees per frame.
// Not safe for concurrent use
type Spring struct {
	angle    float64
	velocity float64
	dragging bool
}

// NewSpring returns an antenna at rest
func NewSpring() *Spring {
	return &Spring{angle: constant.AntennaRestAngle}
}

// Step runs one fixed-timestep spring update; no-op while dragging.
// Snaps to rest once the pre-update displacement and post-update velocity are both tiny
func (s *Spring) Step() {
	if s.dragging {
		return
	}
	displacement := s.angle - constant.AntennaRestAngle
	s.velocity += -constant.AntennaStiffness * displacement
	s.velocity *= constant.AntennaDamping
	s.angle += s.velocity

	if math.Abs(displacement) < constant.AntennaRestEpsilon && math.Abs(s.velocity) < constant.AntennaVelocityEpsilon {
		s.angle = constant.AntennaRestAngle
		s.velocity = 0
	}
}

// Advance runs Step n times, one per elapsed frame
func (s *Spring) Advance(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// Grab begins direct manipulation; the spring is suspended until Release
func (s *Spring) Grab() {
	s.dragging = true
	s.velocity = 0
}

// Drag points the antenna at the pointer.
// dx: pointer offset right of the pivot
// dy: pointer offset above the pivot (screen y inverted)
// Angle is clamped to the antenna's travel and velocity zeroed
func (s *Spring) Drag(dx, dy float64) {
	if !s.dragging {
		s.Grab()
	}
	a := math.Atan2(dx, dy) * 180 / math.Pi
	s.angle = vmath.Clamp(a, constant.AntennaMinAngle, constant.AntennaMaxAngle)
	s.velocity = 0
}

// Release ends direct manipulation; the spring resumes from the held angle at rest velocity
func (s *Spring) Release() {
	s.dragging = false
}

// Boing injects a random angle around rest and a random velocity impulse.
// Works regardless of drag state
func (s *Spring) Boing(rng *rand.Rand) {
	s.angle = constant.AntennaRestAngle + vmath.Signed(rng.Float64(), constant.AntennaBoingAngleSpan)
	s.velocity = vmath.Signed(rng.Float64(), constant.AntennaBoingVelocitySpan)
}

// Set forces the state, used by tests and restores
func (s *Spring) Set(angle, velocity float64) {
	s.angle = angle
	s.velocity = velocity
}

// Angle returns the current angle in degrees
func (s *Spring) Angle() float64 {
	return s.angle
}

// Velocity returns the current angular velocity
func (s *Spring) Velocity() float64 {
	return s.velocity
}

// Dragging reports whether the antenna is held
func (s *Spring) Dragging() bool {
	return s.dragging
}

// AtRest reports whether the spring has snapped to its rest angle
func (s *Spring) AtRest() bool {
	return s.angle == constant.AntennaRestAngle && s.velocity == 0
}
