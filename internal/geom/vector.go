/*
 * Copyright (C) 2023 by Jason Figge
 */

package geom

import "math"

// Vector2 is an immutable 2D vector value.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Div(k float64) Vector2 {
	return Vector2{X: v.X / k, Y: v.Y / k}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize scales v to unit length. The zero vector has no direction;
// callers must not normalize it (the result is NaN).
func (v Vector2) Normalize() Vector2 {
	return v.Div(v.Length())
}

// UnitVector returns the unit direction vector for angle a.
func UnitVector(a Angle) Vector2 {
	return Vector2{X: a.Cos(), Y: a.Sin()}.Normalize()
}
