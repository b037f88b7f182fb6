package render

import (
	"github.com/lixenwraith/weatherpets/app"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	App    *app.App
	View   *app.View
	Layout Layout
	Frame  int64
	// Searching is set while the country search box has keyboard focus
	Searching bool
}

// NewContext builds a context for the current screen size
func NewContext(a *app.App, width, height int, frame int64, searching bool) Context {
	return Context{
		App:       a,
		View:      a.Snapshot(),
		Layout:    NewLayout(width, height, a.PanelHeight()),
		Frame:     frame,
		Searching: searching,
	}
}
