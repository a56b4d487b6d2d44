/*
 * Copyright (C) 2023 by Jason Figge
 */

package geom

import "math"

// Angle is an orientation stored in radians but constructed and adjusted in
// degrees. Values are never wrapped; they grow unbounded in either direction,
// which is fine since sin/cos are periodic.
type Angle float64

// Degrees converts a degree value into an Angle.
func Degrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180)
}

// Rad returns the angle in radians.
func (a Angle) Rad() float64 {
	return float64(a)
}

// Add adds a degree delta in place.
func (a *Angle) Add(deg float64) {
	*a += Degrees(deg)
}

// SubDegrees returns the angle reduced by a degree delta.
func (a Angle) SubDegrees(deg float64) Angle {
	return a - Degrees(deg)
}

// Diff returns the difference a-b in radians.
func (a Angle) Diff(b Angle) float64 {
	return float64(a - b)
}

func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}
