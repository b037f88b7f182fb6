// Package globe holds the orthographic world projection and the rotation/drag/click
// controller driving it
package globe

import (
	"math"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/vmath"
)

// Projection is an orthographic projection with a two-angle rotation, matching the
// conventions of d3.geoOrthographic: rotate[0] spins longitude, rotate[1] tilts
type Projection struct {
	Scale     float64
	Translate vmath.Vec2
	// Rotate holds [lambda, phi] in degrees
	Rotate [2]float64
}

// NewProjection returns the globe's default projection
func NewProjection() *Projection {
	return &Projection{
		Scale:     constant.GlobeScale,
		Translate: vmath.Vec2{X: constant.GlobeTranslateX, Y: constant.GlobeTranslateY},
	}
}

// rotate maps geographic coordinates to the rotated frame in which (0,0) faces the viewer
func (p *Projection) rotate(lon, lat float64) vmath.Vec3F {
	v := vmath.SphericalToCartesian((lon+p.Rotate[0])*vmath.DegToRad, lat*vmath.DegToRad)
	return vmath.RotateAboutY(v, p.Rotate[1]*vmath.DegToRad)
}

// Project maps lon/lat in degrees to screen coordinates.
// visible is false for points on the far hemisphere
func (p *Projection) Project(lon, lat float64) (pt vmath.Vec2, visible bool) {
	v := p.rotate(lon, lat)
	// Orthographic: x = cos(phi)sin(lambda) = Y, y = sin(phi) = Z
	pt = vmath.Vec2{
		X: p.Translate.X + p.Scale*v.Y,
		Y: p.Translate.Y - p.Scale*v.Z,
	}
	return pt, v.X > math.Cos(constant.GlobeClipAngle*vmath.DegToRad)
}

// Invert maps a screen point back to lon/lat in degrees. ok is false off the disc
func (p *Projection) Invert(pt vmath.Vec2) (lon, lat float64, ok bool) {
	x := (pt.X - p.Translate.X) / p.Scale
	y := (p.Translate.Y - pt.Y) / p.Scale
	rho2 := x*x + y*y
	if rho2 > 1 {
		return 0, 0, false
	}
	v := vmath.Vec3F{X: math.Sqrt(1 - rho2), Y: x, Z: y}
	v = vmath.RotateAboutY(v, -p.Rotate[1]*vmath.DegToRad)

	lambda, phi := vmath.CartesianToSpherical(v)
	lon = vmath.WrapDegrees(lambda*vmath.RadToDeg - p.Rotate[0])
	lat = phi * vmath.RadToDeg
	return lon, lat, true
}

// Radius returns the on-screen disc radius
func (p *Projection) Radius() float64 {
	return p.Scale
}

// Center returns the on-screen disc center
func (p *Projection) Center() vmath.Vec2 {
	return p.Translate
}
