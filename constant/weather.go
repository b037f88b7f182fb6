package constant

import "time"

// Mock feed
const (
	FeedInterval = 10 * time.Second
	FeedJitter   = 0.2
)

// Unit conversion
const (
	MPSToMPH = 2.237
)

// Radio
const (
	RadioMaxVolume    = 100
	RadioNoteInterval = 1200 * time.Millisecond
	RadioNoteKeep     = 8
	RadioNoteMinX     = 20.0
	RadioNoteSpanX    = 60.0
	RadioKnobSweep    = 270.0
	RadioKnobOffset   = -135.0
	RadioSampleRate   = 44100
)

// Panel resize
const (
	PanelMinHeight     = 8
	PanelDefaultHeight = 10
	PanelMaxFraction   = 0.7
)

// Radio knob drag: volume points per pointer row
const RadioKnobRowStep = 5.0

// Statistics view outlook
const (
	OutlookHistoryDays = 7
	OutlookYearAgoDays = 365
)

// Keyboard steps
const (
	RadioVolumeStep = 5
	PanelResizeStep = 2
)
