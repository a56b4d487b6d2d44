/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import "raycaster/internal/geom"

// Ray is an origin plus a direction angle. A ray belongs to exactly one
// player slot; its origin tracks the player position and its angle tracks
// the heading.
type Ray struct {
	x, y  float64
	angle geom.Angle
}

func NewRay(x, y float64, a geom.Angle) Ray {
	return Ray{x: x, y: y, angle: a}
}

func (r Ray) Angle() geom.Angle {
	return r.angle
}

func (r *Ray) Rotate(deg float64) {
	r.angle.Add(deg)
}

func (r *Ray) MoveTo(x, y float64) {
	r.x = x
	r.y = y
}

// Intersect solves the infinite ray against the finite wall segment in
// normal form. A hit requires 0 < tw < 1 (strictly inside the segment,
// endpoints excluded) and tr > 0 (strictly ahead of the origin). tr is the
// Euclidean distance along the ray, since the direction is unit length.
// Parallel lines are detected by an exact den == 0 test.
func (r Ray) Intersect(w Wall) (tw, tr float64, ok bool) {
	dir := geom.UnitVector(r.angle)

	nwx := float64(w.Y2 - w.Y1)
	nwy := float64(w.X1 - w.X2)
	nrx := dir.Y
	nry := -dir.X

	den := nry*nwx - nrx*nwy
	if den == 0 {
		return 0, 0, false
	}

	tw = -(nrx*(float64(w.X1)-r.x) + nry*(float64(w.Y1)-r.y)) / den
	tr = -(nwy*(float64(w.Y1)-r.y) + nwx*(float64(w.X1)-r.x)) / den

	if tw <= 0 || tw >= 1 || tr <= 0 {
		return 0, 0, false
	}
	return tw, tr, true
}
