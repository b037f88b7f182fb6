package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityPets
	PriorityView
	PriorityRadio
	PriorityPanel
	PrioritySelector
	PriorityGlobe
	PrioritySidebar
	PriorityStatusBar
)
