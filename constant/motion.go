package constant

import "time"

// Frame timing. One frame-unit is the elapsed time of a single 60 Hz frame;
// the motion and globe tunables below are expressed per frame-unit.
const (
	FrameRate     = 60
	FrameInterval = time.Second / FrameRate
)

// Autonomous pet wandering
const (
	// Idle threshold is drawn once per idle period from [IdleThresholdMin, IdleThresholdMin+IdleThresholdSpan)
	IdleThresholdMin  = 200.0
	IdleThresholdSpan = 300.0

	// MoveChance is the Bernoulli probability that an expired idle period starts a move
	MoveChance = 0.7

	// WanderOffset is the half-width of the per-axis target perturbation
	WanderOffset = 15.0

	// Bounds of the percentage-of-viewport coordinate space pets may occupy
	WanderMin = 10.0
	WanderMax = 90.0

	WanderSpeed    = 0.1
	ArrivalEpsilon = 0.5

	FloatAmplitude = 5.0
	FloatPhaseRate = 0.05
	FloatPhaseSeed = 100.0
)

// Catalog default positions: x = base + (i*stepX) % span, y = base + (i*stepY) % span
const (
	DefaultPosBase  = 20.0
	DefaultPosStepX = 10
	DefaultPosStepY = 15
	DefaultPosSpan  = 60
)
