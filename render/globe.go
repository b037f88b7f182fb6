package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/geo"
)

// GlobeRenderer rasterizes the orthographic globe by inverting every cell of the globe box.
// Feature lookups are cached until the rotation, outline or box changes
type GlobeRenderer struct {
	rect     Rect
	rotation [2]float64
	features *geo.Collection
	// cells holds the feature name per cell, "" for ocean, and off the disc when !onDisc
	cells  []string
	onDisc []bool
	valid  bool
}

// NewGlobeRenderer creates a renderer with an empty cache
func NewGlobeRenderer() *GlobeRenderer {
	return &GlobeRenderer{}
}

func (g *GlobeRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	if l.Globe.Empty() {
		return
	}
	globe := ctx.App.Globe()
	features := ctx.App.Features()
	g.refresh(l, globe.Rotation(), features, func(x, y int) (string, bool) {
		lon, lat, ok := globe.Projection().Invert(l.GlobePoint(x, y))
		if !ok {
			return "", false
		}
		if f, hit := features.FeatureAt(lon, lat); hit {
			return f.Name, true
		}
		return "", true
	})

	offDisc := baseStyle()
	ocean := baseStyle().Background(colorOcean).Foreground(colorMuted)
	land := baseStyle().Background(colorLand)
	active := baseStyle().Background(colorLandActive)

	for i, name := range g.cells {
		x := l.Globe.X + i%l.Globe.W
		y := l.Globe.Y + i/l.Globe.W
		switch {
		case !g.onDisc[i]:
			s.SetContent(x, y, ' ', nil, offDisc)
		case features == nil:
			s.SetContent(x, y, '·', nil, ocean)
		case name == "":
			s.SetContent(x, y, ' ', nil, ocean)
		case globe.Active(name):
			s.SetContent(x, y, ' ', nil, active)
		default:
			s.SetContent(x, y, ' ', nil, land)
		}
	}

	if features == nil {
		drawCentered(s, l.Globe, l.Globe.Y+l.Globe.H/2, ocean.Bold(true), "loading map…")
	}
}

func (g *GlobeRenderer) refresh(l Layout, rot [2]float64, features *geo.Collection, classify func(x, y int) (string, bool)) {
	if g.valid && g.rect == l.Globe && g.rotation == rot && g.features == features {
		return
	}
	n := l.Globe.W * l.Globe.H
	if cap(g.cells) < n {
		g.cells = make([]string, n)
		g.onDisc = make([]bool, n)
	}
	g.cells = g.cells[:n]
	g.onDisc = g.onDisc[:n]
	for i := range n {
		g.cells[i], g.onDisc[i] = classify(l.Globe.X+i%l.Globe.W, l.Globe.Y+i/l.Globe.W)
	}
	g.rect = l.Globe
	g.rotation = rot
	g.features = features
	g.valid = true
}
