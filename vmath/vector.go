package vmath

import "math"

// Vec2 is a 2D vector in arena units
type Vec2 struct {
	X, Y float64
}

// UnitX is the fallback direction for zero-length normalization
var UnitX = Vec2{X: 1, Y: 0}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale multiplies both components by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector of v, or fallback when v has no usable length
func (v Vec2) Normalize(fallback Vec2) Vec2 {
	mag := v.Magnitude()
	if mag == 0 || !Finite(mag) {
		return fallback
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// WithMagnitude rescales v to length mag, using fallback direction for zero-length input
func (v Vec2) WithMagnitude(mag float64, fallback Vec2) Vec2 {
	return v.Normalize(fallback).Scale(mag)
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
func ReflectAxisX(vel Vec2) Vec2 {
	return Vec2{X: -vel.X, Y: vel.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
func ReflectAxisY(vel Vec2) Vec2 {
	return Vec2{X: vel.X, Y: -vel.Y}
}
