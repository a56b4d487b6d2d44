/*
 * Copyright (C) 2023 by Jason Figge
 */

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycaster/internal/world"
)

type line struct {
	x1, y1, x2, y2 int
	c              Color
}

type rect struct {
	x, y, w, h int
	c          Color
}

// recorder captures draw calls so view output can be asserted without a
// real renderer.
type recorder struct {
	lines []line
	rects []rect
	fills []rect
}

func (r *recorder) DrawLine(x1, y1, x2, y2 int, c Color) {
	r.lines = append(r.lines, line{x1, y1, x2, y2, c})
}

func (r *recorder) DrawRect(x, y, w, h int, c Color) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func (r *recorder) FillRect(x, y, w, h int, c Color) {
	r.fills = append(r.fills, rect{x, y, w, h, c})
}

func TestGray(t *testing.T) {
	assert.Equal(t, Color{0, 0, 0}, Gray(0))
	assert.Equal(t, Color{255, 255, 255}, Gray(100))
	assert.Equal(t, Color{84, 84, 84}, Gray(33))
	// Out-of-range brightness clamps instead of wrapping.
	assert.Equal(t, Color{255, 255, 255}, Gray(140))
	assert.Equal(t, Color{0, 0, 0}, Gray(-10))
}

func TestView3DSliceGeometry(t *testing.T) {
	v := NewView3D(0, 320, 240, 240)
	s := &recorder{}

	v.Draw(s, []world.RayHit{{Dist: 160}}, 320)

	require.Len(t, s.fills, 1)
	// Half the map width away: half height, centered vertically.
	assert.Equal(t, rect{x: 0, y: 60, w: 320, h: 120, c: Gray(75)}, s.fills[0])
	// The viewport frame is drawn last.
	require.Len(t, s.rects, 1)
	assert.Equal(t, rect{x: 0, y: 0, w: 320, h: 240, c: Color{0, 50, 100}}, s.rects[0])
}

func TestView3DSliceHeightSymmetry(t *testing.T) {
	v := NewView3D(0, 320, 240, 240)
	s := &recorder{}

	hits := []world.RayHit{{Dist: 80}, {Dist: 120}, {Dist: 160}, {Dist: 120}, {Dist: 80}}
	v.Draw(s, hits, 320)

	require.Len(t, s.fills, len(hits))
	for i := 0; i < len(hits)/2; i++ {
		assert.Equal(t, s.fills[i].h, s.fills[len(hits)-1-i].h)
	}
	assert.Less(t, s.fills[2].h, s.fills[0].h)
}

// A frame with missing rays divides the view width among the survivors:
// fewer hits, wider slices. This is the documented reference behavior.
func TestView3DWidthRedistribution(t *testing.T) {
	v := NewView3D(0, 320, 240, 240)

	s := &recorder{}
	v.Draw(s, []world.RayHit{{Dist: 100}, {Dist: 100}}, 320)
	require.Len(t, s.fills, 2)
	assert.Equal(t, 160, s.fills[0].w)
	assert.Equal(t, 160, s.fills[1].x)

	s = &recorder{}
	v.Draw(s, []world.RayHit{{Dist: 100}, {Dist: 100}, {Dist: 100}, {Dist: 100}}, 320)
	require.Len(t, s.fills, 4)
	assert.Equal(t, 80, s.fills[0].w)
	assert.Equal(t, 240, s.fills[3].x)
}

// Distances beyond the map width map to non-positive heights; those slices
// draw nothing rather than a negative rectangle.
func TestView3DSkipsFarHits(t *testing.T) {
	v := NewView3D(0, 320, 240, 240)
	s := &recorder{}

	v.Draw(s, []world.RayHit{{Dist: 400}, {Dist: 320}}, 320)

	assert.Empty(t, s.fills)
	assert.Len(t, s.rects, 1)
}

func TestView2DDrawsRaysThenWalls(t *testing.T) {
	v := NewView2D(0, 161, 120, 0.5, 120)
	s := &recorder{}

	walls := []world.Wall{{X1: 10, Y1: 10, X2: 100, Y2: 40}, {X1: 60, Y1: 200, X2: 80, Y2: 180}}
	hits := []world.RayHit{
		{Dist: 50, WallX: 100, WallY: 40},
		{Dist: 60, WallX: 10, WallY: 10},
		{Dist: 70, WallX: 60, WallY: 200},
	}
	v.Draw(s, 160, 120, walls, hits)

	require.Len(t, s.lines, len(hits)+len(walls))
	for i := 0; i < len(hits); i++ {
		assert.Equal(t, Gray(33), s.lines[i].c, "ray line %d", i)
		assert.Equal(t, 80, s.lines[i].x1)
		assert.Equal(t, 60, s.lines[i].y1)
	}
	for i := len(hits); i < len(s.lines); i++ {
		assert.Equal(t, White, s.lines[i].c, "wall line %d", i)
	}

	// Scaled endpoint of the first ray line.
	assert.Equal(t, 50, s.lines[0].x2)
	assert.Equal(t, 20, s.lines[0].y2)

	require.Len(t, s.rects, 1)
	assert.Equal(t, rect{x: 0, y: 0, w: 161, h: 120, c: Color{0, 50, 100}}, s.rects[0])
}
