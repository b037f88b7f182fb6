package app

import (
	"math"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/input"
)

// panel is the resizable bottom detail panel. Heights are in rows
type panel struct {
	height    int
	viewport  int
	drag      input.Drag
	dragStart int
}

func newPanel() panel {
	return panel{height: constant.PanelDefaultHeight}
}

func (p *panel) maxHeight() int {
	if p.viewport <= 0 {
		return math.MaxInt
	}
	m := int(math.Floor(float64(p.viewport) * constant.PanelMaxFraction))
	if m < constant.PanelMinHeight {
		m = constant.PanelMinHeight
	}
	return m
}

func (p *panel) clamp(h int) int {
	if h < constant.PanelMinHeight {
		return constant.PanelMinHeight
	}
	if m := p.maxHeight(); h > m {
		return m
	}
	return h
}

// SetViewport records the available height and re-clamps the panel to it
func (a *App) SetViewport(rows int) {
	a.panel.viewport = rows
	a.panel.height = a.panel.clamp(a.panel.height)
}

// ResizePanel sets the panel height, clamped to [min, 70% of the viewport]
func (a *App) ResizePanel(rows int) {
	a.panel.height = a.panel.clamp(rows)
}

// PanelDragStart grabs the panel grip at row y
func (a *App) PanelDragStart(y int) {
	a.panel.drag.Start(0, float64(y))
	a.panel.dragStart = a.panel.height
}

// PanelDragMove resizes the panel so the grip follows the pointer: dragging up grows it
func (a *App) PanelDragMove(y int) {
	total, _, ok := a.panel.drag.Move(0, float64(y))
	if !ok {
		return
	}
	a.panel.height = a.panel.clamp(a.panel.dragStart - int(total.Y))
}

// PanelDragEnd releases the grip
func (a *App) PanelDragEnd() {
	a.panel.drag.End()
}

// PanelDragging reports whether the grip is held
func (a *App) PanelDragging() bool {
	return a.panel.drag.Active()
}
