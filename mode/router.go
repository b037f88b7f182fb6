// Package mode routes parsed key intents and pointer gestures to app actions
package mode

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/app"
	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/input"
	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/render"
)

// grab is what the pointer took hold of on button press
type grab int

const (
	grabNone grab = iota
	grabGlobe
	grabAntenna
	grabKnob
	grabPanel
)

// Router interprets Intents and pointer events and executes app actions.
// Runs on the frame goroutine
type Router struct {
	app     *app.App
	machine *input.Machine
	log     logging.Logger

	width, height int

	buttons tcell.ButtonMask
	grab    grab
}

// NewRouter creates a router; machine may be nil for default bindings
func NewRouter(a *app.App, machine *input.Machine, log logging.Logger) *Router {
	if machine == nil {
		machine = input.NewMachine(nil)
	}
	if log == nil {
		log = logging.Noop()
	}
	return &Router{
		app:     a,
		machine: machine,
		log:     log.With(logging.String("component", "mode.router")),
	}
}

// HandleEvent dispatches one terminal event and returns false when the app should exit
func (r *Router) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.Handle(r.machine.Process(ev))
	case *tcell.EventMouse:
		r.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		r.Resize(w, h)
	}
	return true
}

// Resize records the screen size and bounds the detail panel to it
func (r *Router) Resize(width, height int) {
	r.width, r.height = width, height
	r.app.SetViewport(r.Layout().Viewport())
}

// Layout returns the layout for the current screen size and panel height
func (r *Router) Layout() render.Layout {
	return render.NewLayout(r.width, r.height, r.app.PanelHeight())
}

// Searching reports whether the search box has keyboard focus
func (r *Router) Searching() bool {
	return r.machine.Mode() == input.ModeSearch
}

// Handle processes an Intent and returns false if the app should exit
func (r *Router) Handle(intent input.Intent) bool {
	a := r.app
	switch intent.Type {
	case input.IntentNone:
	case input.IntentQuit:
		return false
	case input.IntentEscape:
		r.handleEscape()

	case input.IntentSelectNext:
		a.SelectNext()
	case input.IntentSelectPrev:
		a.SelectPrev()
	case input.IntentClearSelection:
		a.ClearSelection()
	case input.IntentRemoveSelected:
		a.RemoveSelected()

	case input.IntentTabHome:
		a.SetTab(app.TabHome)
	case input.IntentTabStats:
		a.SetTab(app.TabStats)
	case input.IntentTabSettings:
		a.SetTab(app.TabSettings)
	case input.IntentTabAbout:
		a.SetTab(app.TabAbout)
	case input.IntentPanelGrow:
		a.ResizePanel(a.PanelHeight() + constant.PanelResizeStep)
	case input.IntentPanelShrink:
		a.ResizePanel(a.PanelHeight() - constant.PanelResizeStep)

	case input.IntentToggleUnits:
		a.ToggleUnits()
	case input.IntentToggleFlags:
		a.ToggleFlags()
	case input.IntentToggleAutoRotate:
		a.ToggleAutoRotate()

	case input.IntentRadioPlayPause:
		a.Radio().PlayPause()
	case input.IntentRadioNextStation:
		a.Radio().NextStation()
	case input.IntentVolumeUp:
		a.Radio().AdjustVolume(constant.RadioVolumeStep)
	case input.IntentVolumeDown:
		a.Radio().AdjustVolume(-constant.RadioVolumeStep)
	case input.IntentToggleMute:
		a.Radio().ToggleMute()
	case input.IntentBoing:
		a.Boing()

	case input.IntentSearchStart:
	case input.IntentTextChar:
		a.AppendSearch(intent.Char)
	case input.IntentTextBackspace:
		a.BackspaceSearch()
	case input.IntentTextConfirm:
		if !a.AddFirstMatch() {
			r.log.Debug(context.Background(), "no country matches search", logging.String("query", a.Search()))
		}

	default:
		r.log.Warn(context.Background(), "unhandled intent", logging.Int("type", int(intent.Type)))
	}
	return true
}

// handleEscape leaves search clearing the query, otherwise drops the selection
func (r *Router) handleEscape() {
	if r.app.Search() != "" {
		r.app.SetSearch("")
		return
	}
	r.app.ClearSelection()
}

func (r *Router) hitInput() render.HitInput {
	return render.HitInput{
		View:        r.app.Snapshot(),
		Rows:        render.SelectorRows(r.app.Selector()),
		Stations:    r.app.Radio().Stations(),
		GlobeRadius: r.app.Globe().Projection().Radius(),
	}
}
