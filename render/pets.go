package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/weatherpets/app"
	"github.com/lixenwraith/weatherpets/pet"
	"github.com/lixenwraith/weatherpets/weather"
)

// BackgroundRenderer paints the paper background and the dotted grid of the home area
type BackgroundRenderer struct{}

func (BackgroundRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	fill(s, Rect{W: l.Width, H: l.Height}, ' ', baseStyle())

	if ctx.View.Tab != app.TabHome {
		return
	}
	grid := baseStyle().Foreground(colorGrid)
	for y := l.Main.Y + 1; y < l.Main.Y+l.Main.H; y += 2 {
		for x := l.Main.X + 2; x < l.Main.X+l.Main.W; x += 4 {
			s.SetContent(x, y, '·', nil, grid)
		}
	}
}

// PetRenderer draws every pet on the home tab, in order so later pets overlap earlier ones
type PetRenderer struct{}

func (PetRenderer) IsVisible(ctx Context) bool {
	return ctx.View.Tab == app.TabHome
}

func (PetRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	showFlags := ctx.View.ShowFlags
	for _, pv := range ctx.View.Pets {
		x, y := l.PetCell(pv.Position, pv.FloatOffset)
		body := baseStyle().Foreground(petColor(pv.Pet)).Bold(true)
		label := baseStyle().Foreground(colorInk)
		if pv.Selected {
			body = body.Background(colorSelected)
			label = label.Background(colorSelected)
		}

		putClipped(s, l.Main, x-2, y-1, body, "/\\_/\\")
		putClipped(s, l.Main, x-2, y, body, face(pv.Mood))
		putClipped(s, l.Main, x+4, y-1, baseStyle().Foreground(ConditionColor(pv.Weather.Condition)), string(conditionIcon(pv.Weather.Condition)))

		name := pv.Name
		if showFlags {
			name = pet.Flag(pv.Name) + " " + name
		}
		w := runewidth.StringWidth(name)
		putClipped(s, l.Main, x-w/2, y+1, label, name)
	}
}

// putClipped draws text, skipping cells outside clip
func putClipped(s tcell.Screen, clip Rect, x, y int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if clip.Contains(x+col, y) && clip.Contains(x+col+w-1, y) {
			s.SetContent(x+col, y, r, nil, style)
		}
		col += w
	}
}

func face(m pet.Mood) string {
	if m == pet.Happy {
		return "(^.^)"
	}
	return "(;_;)"
}

func conditionIcon(c weather.Condition) rune {
	switch c {
	case weather.Clear:
		return '☀'
	case weather.PartlyCloudy:
		return '⛅'
	case weather.Clouds, weather.Overcast:
		return '☁'
	case weather.Rain, weather.Drizzle:
		return '☂'
	case weather.Thunderstorm:
		return '⚡'
	case weather.Snow, weather.Sleet:
		return '❄'
	case weather.Mist, weather.Fog, weather.Haze, weather.Dust:
		return '≈'
	case weather.Windy, weather.Wind:
		return '~'
	}
	return '?'
}
