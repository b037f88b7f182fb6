package input

import "github.com/lixenwraith/weatherpets/vmath"

// Drag tracks one pointer gesture: Start captures a baseline, Move reports deltas,
// End clears the flag. Antenna, globe, volume knob and panel grip each own one
type Drag struct {
	active bool
	start  vmath.Vec2
	last   vmath.Vec2
}

// Start captures the baseline
func (d *Drag) Start(x, y float64) {
	d.active = true
	d.start = vmath.Vec2{X: x, Y: y}
	d.last = d.start
}

// Move returns the offset from the baseline and from the previous point.
// ok is false when no drag is active
func (d *Drag) Move(x, y float64) (total, step vmath.Vec2, ok bool) {
	if !d.active {
		return vmath.Vec2{}, vmath.Vec2{}, false
	}
	p := vmath.Vec2{X: x, Y: y}
	total = vmath.V2Sub(p, d.start)
	step = vmath.V2Sub(p, d.last)
	d.last = p
	return total, step, true
}

// End clears the dragging flag. Returns true if a drag was active
func (d *Drag) End() bool {
	was := d.active
	d.active = false
	return was
}

// Active reports whether a drag is in progress
func (d *Drag) Active() bool {
	return d.active
}

// Origin returns the baseline point
func (d *Drag) Origin() vmath.Vec2 {
	return d.start
}
