package constant

import "time"

// Orthographic globe projection
const (
	GlobeScale      = 130.0
	GlobeTranslateX = 140.0
	GlobeTranslateY = 140.0
	GlobeViewBox    = 280.0
	GlobeClipAngle  = 90.0

	// GlobeRotateSpeed is longitude advance in degrees per frame-unit
	GlobeRotateSpeed = 0.15

	// GlobeDragFactor is divided by the projection scale to get degrees per pointer unit
	GlobeDragFactor = 75.0

	GlobeResumeDelay = 5 * time.Second
)
