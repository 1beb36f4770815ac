package gosiebsp

import "math"

// Vector2 is a point in screen space, in pixels from the top-left corner.
type Vector2 struct {
	X float64
	Y float64
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Float32 returns the coordinates in the precision the drawing backends use.
func (v Vector2) Float32() (float32, float32) {
	return float32(v.X), float32(v.Y)
}
