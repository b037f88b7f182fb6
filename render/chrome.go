package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/app"
	"github.com/lixenwraith/weatherpets/pet"
)

// SelectorRenderer draws the search box and the country list under the globe
type SelectorRenderer struct{}

func (SelectorRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	style := panelStyle()
	fill(s, l.Search, ' ', style)
	fill(s, l.List, ' ', style)

	search := ctx.App.Search()
	switch {
	case ctx.Searching:
		drawTextIn(s, l.Search, 1, l.Search.Y, style.Bold(true), "/ "+search+"▏")
	case search != "":
		drawTextIn(s, l.Search, 1, l.Search.Y, style, "/ "+search)
	default:
		drawTextIn(s, l.Search, 1, l.Search.Y, style.Foreground(colorMuted), "/ search countries")
	}

	showFlags := ctx.View.ShowFlags
	rows := SelectorRows(ctx.App.Selector())
	for i, row := range rows {
		if i >= l.List.H {
			break
		}
		y := l.List.Y + i
		switch row.Kind {
		case RowHeader:
			drawTextIn(s, l.List, 1, y, style.Foreground(colorMuted).Bold(true), row.Label)
		case RowActive:
			drawTextIn(s, l.List, 1, y, style.Foreground(colorLandActive).Bold(true), "✓")
			drawTextIn(s, l.List, 3, y, style, countryLabel(row.Entry.DisplayName, showFlags))
			drawTextIn(s, l.List, l.List.W-2, y, style.Foreground(colorAccent), "×")
		case RowInactive:
			drawTextIn(s, l.List, 1, y, style.Foreground(colorMuted), "+")
			drawTextIn(s, l.List, 3, y, style, countryLabel(row.Entry.DisplayName, showFlags))
		}
	}
}

func countryLabel(name string, flags bool) string {
	if flags {
		return pet.Flag(name) + " " + name
	}
	return name
}

// SidebarRenderer draws the tab buttons
type SidebarRenderer struct{}

func (SidebarRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	style := panelStyle()
	fill(s, l.Sidebar, ' ', style)
	for y := l.Sidebar.Y; y < l.Sidebar.Y+l.Sidebar.H; y++ {
		s.SetContent(l.Sidebar.X+l.Sidebar.W-1, y, '│', nil, style.Foreground(colorMuted))
	}
	drawTextIn(s, l.Sidebar, 1, l.Sidebar.Y, style.Foreground(colorAccent).Bold(true), "W")

	for i, t := range app.Tabs() {
		r := l.TabRect(i)
		ts := style
		if t == ctx.View.Tab {
			ts = ts.Background(colorSelected).Bold(true)
		}
		fill(s, r, ' ', ts)
		drawTextIn(s, r, 1, r.Y, ts, fmt.Sprintf("%d %s", i+1, t.Label()))
	}
}

// StatusBarRenderer draws key hints and feed state on the last row
type StatusBarRenderer struct{}

func (StatusBarRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	style := tcell.StyleDefault.Background(colorInk).Foreground(colorPanel)
	fill(s, l.Status, ' ', style)

	hints := "q quit  / search  tab next  d remove  p play  b boing  r spin"
	drawTextIn(s, l.Status, 1, l.Status.Y, style, hints)

	right := fmt.Sprintf("feed v%d  map %s  %s ", ctx.View.FeedVersion, ctx.View.Globe.Geo, ctx.View.Units)
	w := len(right)
	if w < l.Status.W-len(hints)-2 {
		drawTextIn(s, l.Status, l.Status.W-w, l.Status.Y, style.Bold(true), right)
	}
}
