/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import (
	"math/rand"

	"raycaster/internal/view"
	"raycaster/internal/world"
)

const (
	MapWidth  = 320
	MapHeight = 240

	boundaryWalls = 4
	interiorWalls = 6
)

// Scene owns the wall list, the player and the two views, and orchestrates
// the per-frame move/draw cycle. The wall list is fixed after construction.
type Scene struct {
	walls  []world.Wall
	player *world.Player
	top    *view.View2D
	scr    *view.View3D

	// hits caches the last computed fan and is replaced only on frames
	// where a rotation or movement actually occurred.
	hits []world.RayHit
}

func New(screenWidth, screenHeight int) *Scene {
	s := &Scene{}
	s.initViews(screenWidth, screenHeight)
	s.initWalls()
	s.player = world.NewPlayer(MapWidth/2, MapHeight/2)
	s.hits = s.player.CastRays(s.walls)
	return s
}

// initViews gives the 2D view a third of the screen width, scaled so the
// map fits, and the 3D view the remaining two thirds at double height. Both
// are centered vertically.
func (s *Scene) initViews(screenWidth, screenHeight int) {
	w := float64(screenWidth) / 3.0
	scale := w / MapWidth
	h := MapHeight * scale

	s.top = view.NewView2D(0, int(w)+1, int(h), scale, screenHeight)
	s.scr = view.NewView3D(int(w), int(w*2), int(h*2), screenHeight)
}

// initWalls builds the four border walls and scatters the interior walls at
// random.
func (s *Scene) initWalls() {
	w := MapWidth - 1
	h := MapHeight - 1

	s.walls = []world.Wall{
		{X1: 0, Y1: 0, X2: 0, Y2: h},
		{X1: 0, Y1: 0, X2: w, Y2: 0},
		{X1: w, Y1: 0, X2: w, Y2: h},
		{X1: 0, Y1: h, X2: w, Y2: h},
	}
	for i := 0; i < interiorWalls; i++ {
		s.walls = append(s.walls, world.Wall{
			X1: rand.Intn(w), Y1: rand.Intn(h),
			X2: rand.Intn(w), Y2: rand.Intn(h),
		})
	}
}

// Move applies the frame's rotation and movement deltas. The hit fan is
// recomputed only when a delta is non-zero; idle frames reuse the cache.
func (s *Scene) Move(da, dd float64) {
	if da != 0 {
		s.player.Rotate(da)
	}
	if dd != 0 && s.player.CanMove(dd, MapWidth, MapHeight) {
		s.player.Move(dd)
	}
	if da != 0 || dd != 0 {
		s.hits = s.player.CastRays(s.walls)
	}
}

func (s *Scene) Draw(surface view.Surface) {
	s.top.Draw(surface, s.player.X(), s.player.Y(), s.walls[boundaryWalls:], s.hits)
	s.scr.Draw(surface, s.hits, MapWidth)
}

func (s *Scene) Player() *world.Player {
	return s.player
}

func (s *Scene) Walls() []world.Wall {
	return s.walls
}

func (s *Scene) Hits() []world.RayHit {
	return s.hits
}
