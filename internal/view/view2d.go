/*
 * Copyright (C) 2023 by Jason Figge
 */

package view

import (
	"math"

	"raycaster/internal/world"
)

// View2D draws the top-down map: ray paths from the player to each hit
// point, then the interior walls, scaled from map space into the viewport.
type View2D struct {
	viewport
	scale float64
}

func NewView2D(offset, width, height int, scale float64, screenHeight int) *View2D {
	return &View2D{
		viewport: newViewport(offset, width, height, screenHeight),
		scale:    scale,
	}
}

// Draw renders the ray fan and walls. Boundary walls coincide with the
// viewport frame, so callers pass interior walls only.
func (v *View2D) Draw(s Surface, plrX, plrY float64, walls []world.Wall, hits []world.RayHit) {
	for i := range hits {
		x1 := int(math.Round(plrX*v.scale)) + v.x
		y1 := int(math.Round(plrY*v.scale)) + v.y
		x2 := int(math.Round(hits[i].WallX*v.scale)) + v.x
		y2 := int(math.Round(hits[i].WallY*v.scale)) + v.y
		s.DrawLine(x1, y1, x2, y2, Gray(33))
	}

	for _, w := range walls {
		x1 := int(math.Round(float64(w.X1)*v.scale)) + v.x
		y1 := int(math.Round(float64(w.Y1)*v.scale)) + v.y
		x2 := int(math.Round(float64(w.X2)*v.scale)) + v.x
		y2 := int(math.Round(float64(w.Y2)*v.scale)) + v.y
		s.DrawLine(x1, y1, x2, y2, White)
	}

	v.drawFrame(s)
}
