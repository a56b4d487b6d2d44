/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import "raycaster/internal/geom"

// Wall is a fixed line segment in map coordinates, immutable after
// construction.
type Wall struct {
	X1, Y1, X2, Y2 int
}

// PointAt returns the point at parameter t along the segment, t=0 at
// (X1,Y1) and t=1 at (X2,Y2).
func (w Wall) PointAt(t float64) (float64, float64) {
	return geom.Mix(float64(w.X1), float64(w.X2), t),
		geom.Mix(float64(w.Y1), float64(w.Y2), t)
}
