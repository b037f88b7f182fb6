package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/pet"
)

// PanelRenderer draws the resize grip and the selected pet's detail panel
type PanelRenderer struct{}

func (PanelRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	if l.Grip.Empty() {
		return
	}
	grip := baseStyle().Foreground(colorMuted)
	if ctx.App.PanelDragging() {
		grip = grip.Foreground(colorAccent)
	}
	for x := l.Grip.X; x < l.Grip.X+l.Grip.W; x++ {
		s.SetContent(x, l.Grip.Y, '═', nil, grip)
	}
	drawCentered(s, l.Grip, l.Grip.Y, grip.Bold(true), " ⋮⋮ ")

	if l.Panel.Empty() {
		return
	}
	style := panelStyle()
	fill(s, l.Panel, ' ', style)

	p, ok := ctx.App.Selected()
	if !ok {
		drawCentered(s, l.Panel, l.Panel.Y+l.Panel.H/2, style.Foreground(colorMuted), "Click a pet to see its weather")
		return
	}

	st := ctx.App.Settings()
	r := Rect{X: l.Panel.X + 2, Y: l.Panel.Y, W: max(l.Panel.W-4, 0), H: l.Panel.H}
	y := r.Y + 1

	header := p.Name
	if st.ShowFlags {
		header = pet.Flag(p.Name) + " " + header
	}
	n := drawTextIn(s, r, 0, y, style.Bold(true), header)
	drawTextIn(s, r, n+2, y, style.Foreground(petColor(p)), fmt.Sprintf("%s %s", face(p.Mood), p.Mood))
	y++

	drawTextIn(s, r, 0, y, style.Foreground(colorMuted), p.Weather.Location+" · "+p.Weather.Description)
	y += 2

	n = drawTextIn(s, r, 0, y, style.Foreground(tempColor(p.Weather.TempC)).Bold(true), st.FormatTemp(p.Weather.TempC))
	n += drawTextIn(s, r, n, y, style, "  "+string(conditionIcon(p.Weather.Condition))+" "+p.Weather.Condition.String())
	n += drawTextIn(s, r, n, y, style, fmt.Sprintf("  💧 %d%%", p.Weather.Humidity))
	drawTextIn(s, r, n, y, style, "  ~ "+st.FormatWind(p.Weather.WindMPS))
	y += 2

	if y >= r.Y+r.H {
		return
	}
	outlook, ok := ctx.App.Outlook(p.ID)
	if !ok {
		return
	}
	labels := make([]string, 0, len(outlook.Forecast))
	temps := make([]string, 0, len(outlook.Forecast))
	for _, f := range outlook.Forecast {
		cell := fmt.Sprintf("%-6s", f.Label)
		labels = append(labels, cell)
		temps = append(temps, fmt.Sprintf("%-6s", fmt.Sprintf("%.0f°", displayTemp(st, f.TempC))))
	}
	drawTextIn(s, r, 0, y, style.Foreground(colorMuted), strings.Join(labels, ""))
	drawTextIn(s, r, 0, y+1, style, strings.Join(temps, ""))
}
