package constant

// Terminal cell metrics used to map pixel-scale values onto rows/columns
const (
	CellPixelWidth  = 8.0
	CellPixelHeight = 16.0

	// Fraction of the home area height pets may use, the rest is left to the ground line
	PetAreaHeightFraction = 0.8
)

// Layout
const (
	SidebarWidth    = 12
	SelectorWidth   = 34
	GlobeBoxHeight  = 17
	RadioBoxHeight  = 7
	StatusBarHeight = 1
	MinScreenWidth  = 60
	MinScreenHeight = 20
)

// RadioBoxWidth is the radio box width in columns
const RadioBoxWidth = 26
