// Package gamemath holds small math helpers shared by the deformation core and
// the presentation layer. It must have zero dependencies on ebiten so the core
// stays testable headless.
package gamemath

import "math"

// Vec is a 2D vector in display units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns v multiplied by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dist returns the distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampAbs clamps a value to [-max, max]. A negative max collapses to 0.
func ClampAbs(value, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if value > max {
		return max
	}
	if value < -max {
		return -max
	}
	return value
}
