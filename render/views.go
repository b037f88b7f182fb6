package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/app"
	"github.com/lixenwraith/weatherpets/settings"
)

// ViewRenderer draws the statistics, settings and about tabs
type ViewRenderer struct{}

func (ViewRenderer) IsVisible(ctx Context) bool {
	return ctx.View.Tab != app.TabHome
}

func (ViewRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	// Leave the radio column free
	r := Rect{X: l.Main.X + 2, Y: l.Main.Y, W: max(l.Main.W-l.Radio.W-4, 0), H: l.Main.H}
	switch ctx.View.Tab {
	case app.TabStats:
		renderStats(ctx, s, r)
	case app.TabSettings:
		renderSettings(ctx, s, r)
	case app.TabAbout:
		renderAbout(s, r)
	}
}

func displayTemp(st settings.Settings, celsius float64) float64 {
	return settings.ToDisplayTemp(celsius, st.Units)
}

func renderStats(ctx Context, s tcell.Screen, r Rect) {
	style := baseStyle()
	y := r.Y + 1
	drawTextIn(s, r, 0, y, style.Bold(true), "Statistics")
	y += 2

	stats := ctx.View.Stats
	if stats == nil {
		drawTextIn(s, r, 0, y, style.Foreground(colorMuted), "No pets yet. Adopt one from the list.")
		return
	}
	st := ctx.App.Settings()
	lines := []string{
		fmt.Sprintf("Pets          %d", stats.Total),
		fmt.Sprintf("Avg temp      %s", st.FormatTemp(stats.AvgTempC)),
		fmt.Sprintf("Avg humidity  %.0f%%", stats.AvgHumidity),
		fmt.Sprintf("Avg wind      %s", st.FormatWind(stats.AvgWindMPS)),
		fmt.Sprintf("Most common   %s", stats.MostCommon),
		fmt.Sprintf("Happy/Gloomy  %d/%d", stats.Happy, stats.Gloomy),
		fmt.Sprintf("Hottest       %s %s", stats.Hottest.Name, st.FormatTemp(stats.Hottest.Weather.TempC)),
		fmt.Sprintf("Coldest       %s %s", stats.Coldest.Name, st.FormatTemp(stats.Coldest.Weather.TempC)),
	}
	for _, line := range lines {
		drawTextIn(s, r, 0, y, style, line)
		y++
	}
	y++

	p, ok := ctx.App.Selected()
	if !ok || y >= r.Y+r.H {
		return
	}
	outlook, ok := ctx.App.Outlook(p.ID)
	if !ok {
		return
	}
	drawTextIn(s, r, 0, y, style.Bold(true), p.Name+": past week")
	y++
	col := 0
	for _, h := range outlook.Week {
		col += drawTextIn(s, r, col, y, style.Foreground(tempColor(h.TempC)), fmt.Sprintf("%-6s", fmt.Sprintf("%.0f°", displayTemp(st, h.TempC))))
	}
	y++
	drawTextIn(s, r, 0, y, style.Foreground(colorMuted),
		fmt.Sprintf("A year ago: %s, %s", st.FormatTemp(outlook.YearAgo.TempC), outlook.YearAgo.Condition))
}

func renderSettings(ctx Context, s tcell.Screen, r Rect) {
	style := baseStyle()
	drawTextIn(s, r, 0, r.Y+1, style.Bold(true), "Settings")

	st := ctx.App.Settings()
	values := map[Setting]string{
		SettingUnits:      st.Units.String(),
		SettingFlags:      onOff(st.ShowFlags),
		SettingAutoRotate: onOff(ctx.View.Globe.AutoRotate),
	}
	labels := map[Setting]string{
		SettingUnits:      "Units        (u)",
		SettingFlags:      "Show flags   (f)",
		SettingAutoRotate: "Globe spin   (r)",
	}
	for i, set := range settingRows {
		row := ctx.Layout.settingRow(i)
		n := drawTextIn(s, row, 0, row.Y, style, labels[set])
		drawTextIn(s, row, n+2, row.Y, style.Foreground(colorAccent).Bold(true), "["+values[set]+"]")
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

var aboutLines = []string{
	"About",
	"",
	"Weather pets live on your desk and feel the weather of their country.",
	"Clear skies make them happy; anything else makes them gloomy.",
	"",
	"Click the globe to adopt or release a country, drag it to spin.",
	"Pull the antenna, then let go. Turn the radio on for some lofi.",
	"",
	"Weather is simulated and refreshes every ten seconds.",
}

func renderAbout(s tcell.Screen, r Rect) {
	for i, line := range aboutLines {
		style := baseStyle()
		if i == 0 {
			style = style.Bold(true)
		}
		drawTextIn(s, r, 0, r.Y+1+i, style, line)
	}
}
