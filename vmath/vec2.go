// Package vmath holds the float vector helpers shared by the motion, antenna and globe simulations
package vmath

import "math"

const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// Vec2 is a point in percentage-of-viewport or screen space
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Dist returns the Euclidean distance between a and b
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(b, a))
}

// V2Clamp clamps both components to [lo, hi]
func V2Clamp(v Vec2, lo, hi float64) Vec2 {
	return Vec2{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi)}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Signed maps a unit-interval sample u in [0,1) to [-span/2, span/2)
func Signed(u, span float64) float64 {
	return (u - 0.5) * span
}
