package render

import (
	"math"

	"github.com/lixenwraith/weatherpets/app"
	"github.com/lixenwraith/weatherpets/audio"
	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/pet"
	"github.com/lixenwraith/weatherpets/vmath"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout partitions the screen:
//
//	sidebar | globe + search + country list | main view + radio
//	        |                               | grip
//	        |                               | detail panel
//	status bar
type Layout struct {
	Width, Height int

	Sidebar Rect
	Globe   Rect
	Search  Rect
	List    Rect
	Main    Rect
	Radio   Rect
	Grip    Rect
	Panel   Rect
	Status  Rect
}

// NewLayout computes regions for a screen of width x height with a panel of panelHeight rows
func NewLayout(width, height, panelHeight int) Layout {
	l := Layout{Width: width, Height: height}
	body := max(height-constant.StatusBarHeight, 0)

	l.Status = Rect{X: 0, Y: body, W: width, H: constant.StatusBarHeight}
	l.Sidebar = Rect{X: 0, Y: 0, W: min(constant.SidebarWidth, width), H: body}

	colX := l.Sidebar.W
	colW := max(min(constant.SelectorWidth, width-colX), 0)
	globeH := min(constant.GlobeBoxHeight, body)
	l.Globe = Rect{X: colX, Y: 0, W: colW, H: globeH}
	l.Search = Rect{X: colX, Y: globeH, W: colW, H: min(1, body-globeH)}
	l.List = Rect{X: colX, Y: globeH + 1, W: colW, H: max(body-globeH-1, 0)}

	mainX := colX + colW
	mainW := max(width-mainX, 0)
	panelHeight = min(panelHeight, max(body-1, 0))
	gripY := body - panelHeight - 1
	l.Panel = Rect{X: mainX, Y: gripY + 1, W: mainW, H: panelHeight}
	l.Grip = Rect{X: mainX, Y: gripY, W: mainW, H: 1}
	l.Main = Rect{X: mainX, Y: 0, W: mainW, H: max(gripY, 0)}

	radioW := min(constant.RadioBoxWidth, mainW)
	l.Radio = Rect{X: mainX + mainW - radioW, Y: 0, W: radioW, H: min(constant.RadioBoxHeight, l.Main.H)}
	return l
}

// Viewport is the height available to the main column, used to bound the panel
func (l Layout) Viewport() int {
	return l.Height - constant.StatusBarHeight
}

// PetCell maps a percentage position to the cell of the pet's face.
// bob is the float offset in pixels; one amplitude lifts the pet by one row
func (l Layout) PetCell(pos vmath.Vec2, bob float64) (x, y int) {
	areaH := float64(l.Main.H) * constant.PetAreaHeightFraction
	x = l.Main.X + int(pos.X/100*float64(l.Main.W))
	y = l.Main.Y + int(pos.Y/100*areaH) - int(math.Round(bob/constant.FloatAmplitude))
	return x, y
}

// PetRect is the clickable sprite area around a pet's face cell
func (l Layout) PetRect(pos vmath.Vec2, bob float64) Rect {
	x, y := l.PetCell(pos, bob)
	return Rect{X: x - 3, Y: y - 1, W: 7, H: 3}
}

// GlobePoint maps a globe cell to projection units
func (l Layout) GlobePoint(x, y int) vmath.Vec2 {
	if l.Globe.Empty() {
		return vmath.Vec2{}
	}
	return vmath.Vec2{
		X: (float64(x-l.Globe.X) + 0.5) / float64(l.Globe.W) * constant.GlobeViewBox,
		Y: (float64(y-l.Globe.Y) + 0.5) / float64(l.Globe.H) * constant.GlobeViewBox,
	}
}

// AntennaPivot is the cell the antenna rotates around, on top of the radio body
func (l Layout) AntennaPivot() (x, y int) {
	return l.Radio.X + 4, l.Radio.Y + 3
}

// AntennaTip is the antenna's end cell for angle degrees, 0 pointing straight up
func (l Layout) AntennaTip(angle float64) (x, y int) {
	px, py := l.AntennaPivot()
	rad := angle * math.Pi / 180
	x = px + int(math.Round(math.Sin(rad)*antennaLength*constant.CellPixelHeight/constant.CellPixelWidth))
	y = py - int(math.Round(math.Cos(rad)*antennaLength))
	return x, y
}

// AntennaOffset converts a pointer cell into the pivot-relative pixel offset the spring expects
func (l Layout) AntennaOffset(x, y int) (dx, dyUp float64) {
	px, py := l.AntennaPivot()
	return float64(x-px) * constant.CellPixelWidth, float64(py-y) * constant.CellPixelHeight
}

const antennaLength = 3

// Radio body rows and controls
func (l Layout) stationButton(i int) Rect {
	return Rect{X: l.Radio.X + 2 + i*8, Y: l.Radio.Y + 4, W: 7, H: 1}
}

func (l Layout) playButton() Rect {
	return Rect{X: l.Radio.X + 2, Y: l.Radio.Y + 5, W: 3, H: 1}
}

func (l Layout) muteButton() Rect {
	return Rect{X: l.Radio.X + 6, Y: l.Radio.Y + 5, W: 3, H: 1}
}

func (l Layout) knob() Rect {
	return Rect{X: l.Radio.X + l.Radio.W - 9, Y: l.Radio.Y + 5, W: 3, H: 1}
}

// TabRect is the sidebar button for tab i
func (l Layout) TabRect(i int) Rect {
	return Rect{X: l.Sidebar.X + 1, Y: l.Sidebar.Y + 2 + i*3, W: max(l.Sidebar.W-2, 0), H: 2}
}

// settingRow is the clickable row of setting i in the settings view
func (l Layout) settingRow(i int) Rect {
	return Rect{X: l.Main.X + 2, Y: l.Main.Y + 3 + i*2, W: max(l.Main.W-constant.RadioBoxWidth-4, 0), H: 1}
}

// SelectorRowKind distinguishes list rows in the country selector
type SelectorRowKind int

const (
	RowHeader SelectorRowKind = iota
	RowActive
	RowInactive
)

// SelectorRow is one line of the country list
type SelectorRow struct {
	Kind  SelectorRowKind
	Label string
	Entry pet.CatalogEntry
}

// SelectorRows flattens the selector lists into display rows
func SelectorRows(active, inactive []pet.CatalogEntry) []SelectorRow {
	rows := make([]SelectorRow, 0, len(active)+len(inactive)+2)
	rows = append(rows, SelectorRow{Kind: RowHeader, Label: "My pets"})
	for _, e := range active {
		rows = append(rows, SelectorRow{Kind: RowActive, Label: e.DisplayName, Entry: e})
	}
	rows = append(rows, SelectorRow{Kind: RowHeader, Label: "Adopt"})
	for _, e := range inactive {
		rows = append(rows, SelectorRow{Kind: RowInactive, Label: e.DisplayName, Entry: e})
	}
	return rows
}

// Setting identifies a toggle row in the settings view
type Setting int

const (
	SettingUnits Setting = iota
	SettingFlags
	SettingAutoRotate
)

var settingRows = []Setting{SettingUnits, SettingFlags, SettingAutoRotate}

// TargetKind classifies what lies under the pointer
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetBackground
	TargetPet
	TargetGlobe
	TargetAntenna
	TargetKnob
	TargetStation
	TargetPlay
	TargetMute
	TargetGrip
	TargetSearch
	TargetCountry
	TargetTab
	TargetSetting
	TargetPanel
)

// Target is the hit-test result for one pointer position
type Target struct {
	Kind TargetKind
	// ID is the pet id, catalog id or station id
	ID string
	// Active is set for TargetCountry rows of active countries
	Active  bool
	Tab     app.Tab
	Setting Setting
}

// HitInput is the state a hit test needs beyond the geometry
type HitInput struct {
	View     *app.View
	Rows     []SelectorRow
	Stations []audio.Station
	// GlobeRadius is the disc radius in projection units
	GlobeRadius float64
}

// Hit resolves the topmost interactive target under cell (x, y)
func (l Layout) Hit(x, y int, in HitInput) Target {
	switch {
	case l.Status.Contains(x, y):
		return Target{}
	case l.Sidebar.Contains(x, y):
		for i, t := range app.Tabs() {
			if l.TabRect(i).Contains(x, y) {
				return Target{Kind: TargetTab, Tab: t}
			}
		}
		return Target{}
	case l.Globe.Contains(x, y):
		pt := l.GlobePoint(x, y)
		c := vmath.Vec2{X: constant.GlobeTranslateX, Y: constant.GlobeTranslateY}
		if vmath.V2Dist(pt, c) <= in.GlobeRadius {
			return Target{Kind: TargetGlobe}
		}
		return Target{}
	case l.Search.Contains(x, y):
		return Target{Kind: TargetSearch}
	case l.List.Contains(x, y):
		i := y - l.List.Y
		if i < len(in.Rows) && in.Rows[i].Kind != RowHeader {
			r := in.Rows[i]
			return Target{Kind: TargetCountry, ID: r.Entry.ID, Active: r.Kind == RowActive}
		}
		return Target{}
	case l.Grip.Contains(x, y):
		return Target{Kind: TargetGrip}
	case l.Panel.Contains(x, y):
		return Target{Kind: TargetPanel}
	}

	if in.View != nil && l.hitAntenna(x, y, in.View.Antenna) {
		return Target{Kind: TargetAntenna}
	}
	if l.Radio.Contains(x, y) {
		for i, st := range in.Stations {
			if l.stationButton(i).Contains(x, y) {
				return Target{Kind: TargetStation, ID: st.ID}
			}
		}
		switch {
		case l.playButton().Contains(x, y):
			return Target{Kind: TargetPlay}
		case l.muteButton().Contains(x, y):
			return Target{Kind: TargetMute}
		case l.knob().Contains(x, y):
			return Target{Kind: TargetKnob}
		}
		return Target{}
	}

	if !l.Main.Contains(x, y) || in.View == nil {
		return Target{}
	}
	switch in.View.Tab {
	case app.TabHome:
		// Last drawn is on top
		for i := len(in.View.Pets) - 1; i >= 0; i-- {
			p := in.View.Pets[i]
			if l.PetRect(p.Position, p.FloatOffset).Contains(x, y) {
				return Target{Kind: TargetPet, ID: p.ID}
			}
		}
	case app.TabSettings:
		for i, s := range settingRows {
			if l.settingRow(i).Contains(x, y) {
				return Target{Kind: TargetSetting, Setting: s}
			}
		}
	}
	return Target{Kind: TargetBackground}
}

func (l Layout) hitAntenna(x, y int, angle float64) bool {
	px, py := l.AntennaPivot()
	tx, ty := l.AntennaTip(angle)
	r := Rect{X: min(px, tx) - 1, Y: min(py, ty) - 1}
	r.W = max(px, tx) - r.X + 2
	r.H = max(py, ty) - r.Y + 1
	return r.Contains(x, y)
}
