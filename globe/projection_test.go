package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/vmath"
)

func TestProject_CenterAndEdges(t *testing.T) {
	p := NewProjection()

	pt, vis := p.Project(0, 0)
	assert.True(t, vis)
	assert.InDelta(t, 140, pt.X, 1e-9)
	assert.InDelta(t, 140, pt.Y, 1e-9)

	// North pole sits at the top of the disc
	pt, _ = p.Project(0, 90)
	assert.InDelta(t, 140, pt.X, 1e-9)
	assert.InDelta(t, 10, pt.Y, 1e-9)

	// 45E lies right of center
	pt, vis = p.Project(45, 0)
	assert.True(t, vis)
	assert.Greater(t, pt.X, 140.0)

	_, vis = p.Project(180, 0)
	assert.False(t, vis)
}

func TestProject_RotationBringsLongitudeToCenter(t *testing.T) {
	p := NewProjection()
	// d3 convention: rotate[0] = -lon centers lon
	p.Rotate[0] = -139.7
	pt, vis := p.Project(139.7, 0)
	require.True(t, vis)
	assert.InDelta(t, 140, pt.X, 1e-9)
	assert.InDelta(t, 140, pt.Y, 1e-9)

	p.Rotate = [2]float64{0, -35}
	pt, vis = p.Project(0, 35)
	require.True(t, vis)
	assert.InDelta(t, 140, pt.X, 1e-9)
	assert.InDelta(t, 140, pt.Y, 1e-9)
}

func TestInvert_RoundTrip(t *testing.T) {
	rotations := [][2]float64{{0, 0}, {37.5, -20}, {-120, 45}, {400, 10}}
	points := []struct{ lon, lat float64 }{
		{0, 0}, {10, 20}, {-30, -40}, {2.35, 48.85}, {139.7, 35.7},
	}
	for _, r := range rotations {
		p := NewProjection()
		p.Rotate = r
		for _, pt := range points {
			screen, vis := p.Project(pt.lon, pt.lat)
			if !vis {
				continue
			}
			lon, lat, ok := p.Invert(screen)
			require.True(t, ok)
			assert.InDelta(t, pt.lon, lon, 1e-6, "rotation %v point %v", r, pt)
			assert.InDelta(t, pt.lat, lat, 1e-6, "rotation %v point %v", r, pt)
		}
	}
}

func TestInvert_OffDisc(t *testing.T) {
	p := NewProjection()
	_, _, ok := p.Invert(vmath.Vec2{X: 0, Y: 0})
	assert.False(t, ok)
	_, _, ok = p.Invert(vmath.Vec2{X: 140 + 131, Y: 140})
	assert.False(t, ok)
}
