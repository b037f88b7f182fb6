package mode

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/input"
	"github.com/lixenwraith/weatherpets/render"
)

// handleMouse splits the button-state stream into press, drag and release
func (r *Router) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	prev := r.buttons
	r.buttons = btn & tcell.Button1

	switch {
	case btn&tcell.WheelUp != 0:
		r.handleWheel(x, y, 1)
	case btn&tcell.WheelDown != 0:
		r.handleWheel(x, y, -1)
	case btn&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		r.press(x, y)
	case btn&tcell.Button1 != 0:
		r.drag(x, y)
	case prev&tcell.Button1 != 0:
		r.release(x, y)
	}
}

func (r *Router) press(x, y int) {
	a := r.app
	l := r.Layout()
	target := l.Hit(x, y, r.hitInput())

	if target.Kind != render.TargetSearch && r.Searching() {
		r.machine.SetMode(input.ModeNormal)
	}

	switch target.Kind {
	case render.TargetTab:
		a.SetTab(target.Tab)
	case render.TargetGlobe:
		a.GlobeDragStart(l.GlobePoint(x, y))
		r.grab = grabGlobe
	case render.TargetAntenna:
		a.AntennaGrab()
		a.AntennaDrag(l.AntennaOffset(x, y))
		r.grab = grabAntenna
	case render.TargetKnob:
		a.KnobDragStart(float64(y))
		r.grab = grabKnob
	case render.TargetGrip:
		a.PanelDragStart(y)
		r.grab = grabPanel
	case render.TargetStation:
		a.Radio().Play(target.ID)
	case render.TargetPlay:
		a.Radio().PlayPause()
	case render.TargetMute:
		a.Radio().ToggleMute()
	case render.TargetSearch:
		r.machine.SetMode(input.ModeSearch)
	case render.TargetCountry:
		if target.Active {
			a.RemovePet(target.ID)
		} else {
			a.AddPet(target.ID)
		}
	case render.TargetSetting:
		r.toggleSetting(target.Setting)
	case render.TargetPet:
		a.SelectPet(target.ID)
	case render.TargetBackground:
		a.ClearSelection()
	}
}

func (r *Router) drag(x, y int) {
	a := r.app
	l := r.Layout()
	switch r.grab {
	case grabGlobe:
		a.GlobeDragMove(l.GlobePoint(x, y))
	case grabAntenna:
		a.AntennaDrag(l.AntennaOffset(x, y))
	case grabKnob:
		a.KnobDragMove(float64(y))
	case grabPanel:
		a.PanelDragMove(y)
	}
}

func (r *Router) release(x, y int) {
	a := r.app
	l := r.Layout()
	switch r.grab {
	case grabGlobe:
		pt := l.GlobePoint(x, y)
		// A press and release without movement is a click on the country
		if !a.GlobeDragEnd(pt) {
			a.GlobeClick(pt)
		}
	case grabAntenna:
		a.AntennaRelease()
	case grabKnob:
		a.KnobDragEnd()
	case grabPanel:
		a.PanelDragEnd()
	}
	r.grab = grabNone
}

func (r *Router) handleWheel(x, y, dir int) {
	l := r.Layout()
	switch {
	case l.Radio.Contains(x, y):
		r.app.Radio().AdjustVolume(dir * constant.RadioVolumeStep)
	case l.Grip.Contains(x, y) || l.Panel.Contains(x, y):
		r.app.ResizePanel(r.app.PanelHeight() + dir*constant.PanelResizeStep)
	}
}

func (r *Router) toggleSetting(s render.Setting) {
	switch s {
	case render.SettingUnits:
		r.app.ToggleUnits()
	case render.SettingFlags:
		r.app.ToggleFlags()
	case render.SettingAutoRotate:
		r.app.ToggleAutoRotate()
	}
}
