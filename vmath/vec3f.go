package vmath

import "math"

// Vec3F is a float64 3D vector, used for points on the unit sphere
type Vec3F struct {
	X, Y, Z float64
}

// SphericalToCartesian converts longitude/latitude in radians to a unit vector.
// X points at (0,0), Y at (90°E,0), Z at the north pole
func SphericalToCartesian(lambda, phi float64) Vec3F {
	cosPhi := math.Cos(phi)
	return Vec3F{
		X: math.Cos(lambda) * cosPhi,
		Y: math.Sin(lambda) * cosPhi,
		Z: math.Sin(phi),
	}
}

// CartesianToSpherical is the inverse of SphericalToCartesian for unit vectors
func CartesianToSpherical(v Vec3F) (lambda, phi float64) {
	return math.Atan2(v.Y, v.X), math.Asin(Clamp(v.Z, -1, 1))
}

// RotateAboutY rotates v by angle radians, tilting the X axis toward Z
func RotateAboutY(v Vec3F, angle float64) Vec3F {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3F{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.Z*c + v.X*s,
	}
}

// WrapDegrees normalizes an angle to (-180, 180]
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg+180, 360)
	if deg <= 0 {
		deg += 360
	}
	return deg - 180
}
