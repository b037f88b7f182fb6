package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/weatherpets/pet"
	"github.com/lixenwraith/weatherpets/weather"
)

// Theme colors
var (
	colorBackground = hex("#fdf6e3")
	colorGrid       = hex("#eee3c4")
	colorInk        = hex("#3b3a36")
	colorMuted      = hex("#93a1a1")
	colorAccent     = hex("#ff8fa3")
	colorPanel      = hex("#fffaf0")
	colorOcean      = hex("#b0e0e6")
	colorLand       = hex("#e0e0e0")
	colorLandActive = hex("#98d8a0")
	colorSelected   = hex("#ffd166")
)

// Condition tints for pet bodies and badges
var conditionColors = map[weather.Condition]string{
	weather.Clear:        "#ffd166",
	weather.Clouds:       "#c9ccd5",
	weather.Rain:         "#7fb3e0",
	weather.Snow:         "#e8f4ff",
	weather.Thunderstorm: "#8e7cc3",
	weather.Drizzle:      "#a5c8e4",
	weather.Mist:         "#dfe7ea",
	weather.PartlyCloudy: "#f6e7b0",
	weather.Windy:        "#b5e2c4",
	weather.Haze:         "#e6d5b8",
	weather.Dust:         "#d4b483",
	weather.Overcast:     "#a9acb6",
	weather.Fog:          "#d8d8d8",
	weather.Sleet:        "#c4d7e0",
	weather.Wind:         "#a8dcc0",
}

func hex(s string) tcell.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault
	}
	return toTcell(c)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ConditionColor is the tint for a weather condition
func ConditionColor(c weather.Condition) tcell.Color {
	if h, ok := conditionColors[c]; ok {
		return hex(h)
	}
	return colorMuted
}

// petColor blends the condition tint in Lab space; gloomy pets are desaturated
func petColor(p pet.Pet) tcell.Color {
	base, err := colorful.Hex(conditionColors[p.Weather.Condition])
	if err != nil {
		return colorInk
	}
	if p.Mood == pet.Gloomy {
		grey, _ := colorful.Hex("#808080")
		base = base.BlendLab(grey, 0.35)
	}
	return toTcell(base)
}

// noteColor converts a 0xRRGGBB palette entry
func noteColor(rgb uint32) tcell.Color {
	return tcell.NewHexColor(int32(rgb))
}

// tempColor ramps from blue at -10°C to red at 40°C
func tempColor(celsius float64) tcell.Color {
	cold, _ := colorful.Hex("#5b8fc7")
	hot, _ := colorful.Hex("#e76f51")
	t := (celsius + 10) / 50
	t = min(max(t, 0), 1)
	return toTcell(cold.BlendHcl(hot, t))
}

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(colorBackground).Foreground(colorInk)
}

func panelStyle() tcell.Style {
	return tcell.StyleDefault.Background(colorPanel).Foreground(colorInk)
}
