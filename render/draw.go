package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y), clipped to maxW columns. Returns columns used
func drawText(s tcell.Screen, x, y, maxW int, style tcell.Style, text string) int {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxW {
			break
		}
		s.SetContent(x+col, y, r, nil, style)
		col += w
	}
	return col
}

// drawTextIn writes text on row y of r, offset dx columns from the left edge
func drawTextIn(s tcell.Screen, r Rect, dx, y int, style tcell.Style, text string) int {
	if y < r.Y || y >= r.Y+r.H || dx >= r.W {
		return 0
	}
	return drawText(s, r.X+dx, y, r.W-dx, style, text)
}

// drawCentered writes text centered on row y of r
func drawCentered(s tcell.Screen, r Rect, y int, style tcell.Style, text string) {
	w := runewidth.StringWidth(text)
	if w > r.W {
		text = runewidth.Truncate(text, r.W, "…")
		w = runewidth.StringWidth(text)
	}
	drawTextIn(s, r, (r.W-w)/2, y, style, text)
}

// fill paints every cell of r
func fill(s tcell.Screen, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawBox draws a rounded single-line border around r with an optional title
func drawBox(s tcell.Screen, r Rect, style tcell.Style, title string) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x2, y2 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x2; x++ {
		s.SetContent(x, r.Y, '─', nil, style)
		s.SetContent(x, y2, '─', nil, style)
	}
	for y := r.Y + 1; y < y2; y++ {
		s.SetContent(r.X, y, '│', nil, style)
		s.SetContent(x2, y, '│', nil, style)
	}
	s.SetContent(r.X, r.Y, '╭', nil, style)
	s.SetContent(x2, r.Y, '╮', nil, style)
	s.SetContent(r.X, y2, '╰', nil, style)
	s.SetContent(x2, y2, '╯', nil, style)
	if title != "" && r.W > 4 {
		drawText(s, r.X+2, r.Y, r.W-4, style.Bold(true), " "+title+" ")
	}
}

// inner shrinks r by one cell on each side
func inner(r Rect) Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}
