package app

import (
	"strings"

	"github.com/lixenwraith/weatherpets/pet"
	"github.com/lixenwraith/weatherpets/vmath"
)

// AddPet activates a country by id. Unknown ids are accepted and silently produce no pet
func (a *App) AddPet(id string) {
	if a.closed {
		return
	}
	if a.active.Add(id) {
		a.refresh()
	}
}

// RemovePet deactivates a country; the selection clears if it pointed at that pet
func (a *App) RemovePet(id string) {
	if a.closed {
		return
	}
	if a.active.Remove(id) {
		a.refresh()
	}
}

// ToggleCountry flips the country matching a map feature name. Names that match no
// catalog entry are ignored
func (a *App) ToggleCountry(name string) bool {
	if a.closed || a.catalog == nil {
		return false
	}
	entry, ok := a.catalog.Resolve(name)
	if !ok {
		return false
	}
	a.active.Toggle(entry.ID)
	a.refresh()
	return true
}

// SelectPet focuses pet id. Returns false if no such pet is live
func (a *App) SelectPet(id string) bool {
	p := pet.Find(a.pets, strings.ToLower(id))
	if p == nil {
		return false
	}
	a.selection.Select(p.ID)
	return true
}

// ClearSelection drops the focused pet, as a click on empty background does
func (a *App) ClearSelection() {
	a.selection.Clear()
}

// Selected returns a copy of the focused pet
func (a *App) Selected() (pet.Pet, bool) {
	p := a.selection.Reconcile(a.pets)
	if p == nil {
		return pet.Pet{}, false
	}
	return *p, true
}

// SelectNext cycles the selection forward through the pets, wrapping around
func (a *App) SelectNext() {
	a.cycleSelection(1)
}

// SelectPrev cycles the selection backward through the pets, wrapping around
func (a *App) SelectPrev() {
	a.cycleSelection(-1)
}

func (a *App) cycleSelection(step int) {
	n := len(a.pets)
	if n == 0 {
		a.selection.Clear()
		return
	}
	idx := -1
	if id, ok := a.selection.ID(); ok {
		for i := range a.pets {
			if a.pets[i].ID == id {
				idx = i
				break
			}
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+step)%n + n) % n
	}
	a.selection.Select(a.pets[idx].ID)
}

// RemoveSelected deactivates the focused pet's country
func (a *App) RemoveSelected() {
	if id, ok := a.selection.ID(); ok {
		a.RemovePet(id)
	}
}

// SetTab switches the main view
func (a *App) SetTab(t Tab) {
	a.tab = t
}

// Tab returns the current main view
func (a *App) Tab() Tab {
	return a.tab
}

func (a *App) ToggleUnits() {
	a.settings.ToggleUnits()
}

func (a *App) ToggleFlags() {
	a.settings.ToggleFlags()
}

// SetSearch replaces the country selector query
func (a *App) SetSearch(q string) {
	a.search = q
}

// AppendSearch adds one character to the selector query
func (a *App) AppendSearch(r rune) {
	a.search += string(r)
}

// BackspaceSearch removes the last character of the selector query
func (a *App) BackspaceSearch() {
	if a.search == "" {
		return
	}
	runes := []rune(a.search)
	a.search = string(runes[:len(runes)-1])
}

// Search returns the selector query
func (a *App) Search() string {
	return a.search
}

// Selector returns the country selector lists: active countries in catalog order
// and inactive countries matching the search query
func (a *App) Selector() (active, inactive []pet.CatalogEntry) {
	if a.catalog == nil {
		return nil, nil
	}
	return pet.Filter(a.catalog, a.active, a.search)
}

// AddFirstMatch activates the first inactive country matching the query and clears it
func (a *App) AddFirstMatch() bool {
	_, inactive := a.Selector()
	if len(inactive) == 0 {
		return false
	}
	a.AddPet(inactive[0].ID)
	a.search = ""
	return true
}

// Boing kicks the antenna with a random impulse
func (a *App) Boing() {
	if a.closed {
		return
	}
	a.antenna.Boing(a.rng)
}

// AntennaGrab starts direct manipulation of the antenna
func (a *App) AntennaGrab() {
	a.antenna.Grab()
}

// AntennaDrag points the antenna at an offset from its pivot, dyUp positive upward
func (a *App) AntennaDrag(dx, dyUp float64) {
	a.antenna.Drag(dx, dyUp)
}

// AntennaRelease hands the antenna back to the spring
func (a *App) AntennaRelease() {
	a.antenna.Release()
}

// GlobeDragStart begins a globe drag at pt in projection units
func (a *App) GlobeDragStart(pt vmath.Vec2) {
	a.globeDrag.Start(pt.X, pt.Y)
	a.globeMoved = false
	a.globe.DragStart()
}

// GlobeDragMove rotates the globe by the pointer step since the previous move
func (a *App) GlobeDragMove(pt vmath.Vec2) {
	_, step, ok := a.globeDrag.Move(pt.X, pt.Y)
	if !ok {
		return
	}
	if step != (vmath.Vec2{}) {
		a.globeMoved = true
	}
	a.globe.DragMove(step.X, step.Y)
}

// GlobeDragEnd releases the globe. Returns whether the pointer moved at any point
// during the drag, including a release away from the press point
func (a *App) GlobeDragEnd(pt vmath.Vec2) (moved bool) {
	if !a.globeDrag.Active() {
		return false
	}
	moved = a.globeMoved || pt != a.globeDrag.Origin()
	a.globeMoved = false
	a.globeDrag.End()
	a.globe.DragEnd()
	return moved
}

// GlobeClick toggles the country under pt in projection units. Ignored while loading
func (a *App) GlobeClick(pt vmath.Vec2) (string, bool) {
	features := a.Features()
	if features == nil {
		return "", false
	}
	return a.globe.Click(pt, features)
}

// ToggleAutoRotate flips the globe auto-rotate preference
func (a *App) ToggleAutoRotate() bool {
	return a.globe.ToggleAutoRotate()
}

// KnobDragStart begins a volume knob drag at row y
func (a *App) KnobDragStart(y float64) {
	a.knobDrag.Start(0, y)
}

// KnobDragMove adjusts the volume by the row step since the previous move, up is louder
func (a *App) KnobDragMove(y float64) {
	_, step, ok := a.knobDrag.Move(0, y)
	if !ok || step.Y == 0 {
		return
	}
	a.radio.DragKnob(step.Y)
}

// KnobDragEnd finishes a knob drag
func (a *App) KnobDragEnd() {
	a.knobDrag.End()
}
