package vmath

import "math"

// Vec2 is a float64 2D vector in scene coordinates
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides both components by s; s == 0 yields the zero vector
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Vec2{}
	}
	inv := 1.0 / s
	return Vec2{v.X * inv, v.Y * inv}
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v, zero-safe
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Len())
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Lerp interpolates linearly between a and b, t in [0, 1]
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Approx reports whether a and b are within eps of each other
func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Near reports whether both components of v and o are within eps
func (v Vec2) Near(o Vec2, eps float64) bool {
	return Approx(v.X, o.X, eps) && Approx(v.Y, o.Y, eps)
}
