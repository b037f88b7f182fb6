package constant

// Antenna spring-damper, evaluated once per frame
const (
	AntennaStiffness = 0.5
	AntennaDamping   = 0.88
	AntennaRestAngle = -35.0

	// Snap to rest once both fall below these to avoid endless micro-jitter
	AntennaRestEpsilon     = 0.05
	AntennaVelocityEpsilon = 0.01

	// Direct manipulation clamp
	AntennaMinAngle = -80.0
	AntennaMaxAngle = 20.0

	// Boing impulse: angle = rest + U(-0.5,0.5)*span, velocity = U(-0.5,0.5)*span
	AntennaBoingAngleSpan    = 60.0
	AntennaBoingVelocitySpan = 5.0
)
