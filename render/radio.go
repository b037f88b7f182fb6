package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weatherpets/app"
)

var knobGlyphs = []rune{'↙', '←', '↖', '↑', '↗', '→', '↘'}

// RadioRenderer draws the radio body, its antenna and the floating notes
type RadioRenderer struct{}

func (RadioRenderer) Render(ctx Context, s tcell.Screen) {
	l := ctx.Layout
	if l.Radio.W < 12 || l.Radio.H < 7 {
		return
	}
	rv := ctx.View.Radio
	style := panelStyle()

	title := "radio"
	for _, st := range ctx.App.Radio().Stations() {
		if st.ID == rv.Station {
			title = st.Name
		}
	}
	body := Rect{X: l.Radio.X, Y: l.Radio.Y + 3, W: l.Radio.W, H: 4}
	fill(s, inner(body), ' ', style)
	drawBox(s, body, style.Foreground(colorInk), title)

	drawNotes(s, l, rv)
	drawAntenna(s, l, ctx.View.Antenna)

	for i, st := range ctx.App.Radio().Stations() {
		b := l.stationButton(i)
		bs := style.Foreground(colorMuted)
		if st.ID == rv.Station {
			bs = style.Foreground(colorInk).Bold(true).Reverse(rv.Playing)
		}
		drawText(s, b.X, b.Y, b.W, bs, "["+st.Name+"]")
	}

	play := '▶'
	if rv.Playing {
		play = '⏸'
	}
	pb := l.playButton()
	drawText(s, pb.X, pb.Y, pb.W, style.Foreground(colorAccent).Bold(true), "["+string(play)+"]")

	mute := "[♪]"
	if rv.Muted {
		mute = "[×]"
	}
	mb := l.muteButton()
	drawText(s, mb.X, mb.Y, mb.W, style.Foreground(colorInk), mute)

	k := l.knob()
	idx := int(math.Round((rv.KnobAngle + 135) / 45))
	idx = min(max(idx, 0), len(knobGlyphs)-1)
	drawText(s, k.X, k.Y, k.W, style.Foreground(colorInk).Bold(true), "("+string(knobGlyphs[idx])+")")

	vol := rv.Volume
	if rv.Muted {
		vol = 0
	}
	drawText(s, k.X+k.W+1, k.Y, 5, style.Foreground(colorMuted), fmt.Sprintf("%3d", vol))
}

func drawAntenna(s tcell.Screen, l Layout, angle float64) {
	px, py := l.AntennaPivot()
	tx, ty := l.AntennaTip(angle)
	stick := baseStyle().Foreground(colorInk)
	glyph := stickGlyph(angle)

	steps := max(abs(tx-px), abs(ty-py))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := px + int(math.Round(float64(tx-px)*t))
		y := py + int(math.Round(float64(ty-py)*t))
		s.SetContent(x, y, glyph, nil, stick)
	}
	s.SetContent(tx, ty, '●', nil, baseStyle().Foreground(colorAccent))
}

func stickGlyph(angle float64) rune {
	switch {
	case angle < -60:
		return '─'
	case angle < -20:
		return '╲'
	case angle <= 20:
		return '│'
	}
	return '╱'
}

func drawNotes(s tcell.Screen, l Layout, rv app.RadioView) {
	n := len(rv.Notes)
	for i, note := range rv.Notes {
		x := l.Radio.X + int(note.X/100*float64(l.Radio.W))
		// Newest notes sit lowest and drift up as they age
		y := l.Radio.Y + 2 - min((n-1-i)/3, 2)
		glyph := '♪'
		if note.ID%2 == 1 {
			glyph = '♫'
		}
		s.SetContent(x, y, glyph, nil, baseStyle().Foreground(noteColor(note.Color)).Bold(true))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
