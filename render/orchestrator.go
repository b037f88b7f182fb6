// Package render draws the app into a tcell screen through a priority-ordered
// list of renderers and maps pointer positions back to interactive targets
package render

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/constant"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
	frames    atomic.Int64
}

// NewOrchestrator creates an orchestrator drawing into screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 16),
	}
}

// NewDefaultOrchestrator registers every built-in renderer
func NewDefaultOrchestrator(screen tcell.Screen) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(BackgroundRenderer{}, PriorityBackground)
	o.Register(PetRenderer{}, PriorityPets)
	o.Register(ViewRenderer{}, PriorityView)
	o.Register(RadioRenderer{}, PriorityRadio)
	o.Register(PanelRenderer{}, PriorityPanel)
	o.Register(SelectorRenderer{}, PrioritySelector)
	o.Register(NewGlobeRenderer(), PriorityGlobe)
	o.Register(SidebarRenderer{}, PrioritySidebar)
	o.Register(StatusBarRenderer{}, PriorityStatusBar)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Len returns the number of registered renderers
func (o *Orchestrator) Len() int {
	return len(o.renderers)
}

// Resize resyncs the terminal after a size change
func (o *Orchestrator) Resize() {
	o.screen.Sync()
}

// Frames returns the number of frames rendered
func (o *Orchestrator) Frames() int64 {
	return o.frames.Load()
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.screen.Clear()

	if ctx.Layout.Width < constant.MinScreenWidth || ctx.Layout.Height < constant.MinScreenHeight {
		drawText(o.screen, 0, 0, ctx.Layout.Width, baseStyle(), "terminal too small")
		o.screen.Show()
		o.frames.Add(1)
		return
	}

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
	o.frames.Add(1)
}
