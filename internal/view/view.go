/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package view renders the computed ray hits: a top-down map view and a
// first-person wall-slice view. Views are pure consumers; all geometry has
// already been resolved by the world package.
package view

// Surface is the draw target the views render to. All coordinates are
// integer pixels.
type Surface interface {
	DrawLine(x1, y1, x2, y2 int, c Color)
	DrawRect(x, y, w, h int, c Color)
	FillRect(x, y, w, h int, c Color)
}

// viewport is the screen-space rectangle shared by both views. Each view
// embeds one; there is no view hierarchy beyond this common field.
type viewport struct {
	x, y          int
	width, height int
}

// newViewport centers the viewport vertically on a screen of the given
// height.
func newViewport(offset, width, height, screenHeight int) viewport {
	return viewport{
		x:      offset,
		y:      (screenHeight - height) / 2,
		width:  width,
		height: height,
	}
}

func (v viewport) drawFrame(s Surface) {
	s.DrawRect(v.x, v.y, v.width, v.height, frame)
}
