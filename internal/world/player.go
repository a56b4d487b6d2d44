/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import (
	"math"

	"raycaster/internal/geom"
)

const (
	// RayCount is the number of rays in the fan.
	RayCount = 320
	// FieldOfView is the horizontal field of view in degrees.
	FieldOfView = 60.0
)

// RayHit records where a ray struck its nearest wall. Dist is the
// perpendicular (fisheye-corrected) distance, not the raw distance along
// the ray. Rays that miss every wall produce no RayHit.
type RayHit struct {
	Dist  float64
	WallX float64
	WallY float64
}

// Player is a position and heading with a rigid fan of rays spread across
// the field of view. The fan is built once at construction and thereafter
// moved and rotated in lockstep with the player, never rebuilt.
type Player struct {
	x, y    float64
	heading geom.Angle
	rays    []Ray
}

func NewPlayer(x, y float64) *Player {
	p := &Player{x: x, y: y, rays: make([]Ray, 0, RayCount)}
	a := p.heading.SubDegrees(FieldOfView / 2)
	for i := 0; i < RayCount; i++ {
		p.rays = append(p.rays, NewRay(x, y, a))
		a.Add(FieldOfView / RayCount)
	}
	return p
}

func (p *Player) X() float64 {
	return p.x
}

func (p *Player) Y() float64 {
	return p.y
}

func (p *Player) Heading() geom.Angle {
	return p.heading
}

// CanMove reports whether moving dd along the current heading keeps the
// rounded position at least 1 unit inside the rectangular map border. This
// gates the border only; interior walls never block movement.
func (p *Player) CanMove(dd float64, mapWidth, mapHeight int) bool {
	dir := geom.UnitVector(p.heading)
	newX := int(math.Round(p.x + dir.X*dd))
	newY := int(math.Round(p.y + dir.Y*dd))

	if newX < 1 || newY < 1 {
		return false
	}
	if newX >= mapWidth-1 || newY >= mapHeight-1 {
		return false
	}
	return true
}

// Rotate turns the heading and every ray by da degrees.
func (p *Player) Rotate(da float64) {
	p.heading.Add(da)
	for i := range p.rays {
		p.rays[i].Rotate(da)
	}
}

// Move displaces the player dd units along the current heading (negative dd
// moves backward) and carries every ray origin along.
func (p *Player) Move(dd float64) {
	dir := geom.UnitVector(p.heading)
	p.x += dir.X * dd
	p.y += dir.Y * dd
	for i := range p.rays {
		p.rays[i].MoveTo(p.x, p.y)
	}
}

// CastRays scans every wall for every ray and collects the nearest hit per
// ray, smallest distance along the ray winning. Ties keep the first wall in
// list order since the comparison is strict. The fisheye correction is
// applied here, once, so consumers never re-derive it.
func (p *Player) CastRays(walls []Wall) []RayHit {
	hits := make([]RayHit, 0, len(p.rays))

	for i := range p.rays {
		jHit := 0
		twHit := 0.0
		trHit := math.MaxFloat64

		for j := range walls {
			if tw, tr, ok := p.rays[i].Intersect(walls[j]); ok && tr < trHit {
				jHit, twHit, trHit = j, tw, tr
			}
		}

		if trHit == math.MaxFloat64 {
			continue
		}

		wx, wy := walls[jHit].PointAt(twHit)
		hits = append(hits, RayHit{
			Dist:  trHit * math.Cos(p.rays[i].Angle().Diff(p.heading)),
			WallX: wx,
			WallY: wy,
		})
	}
	return hits
}
