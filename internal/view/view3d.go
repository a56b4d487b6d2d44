/*
 * Copyright (C) 2023 by Jason Figge
 */

package view

import (
	"raycaster/internal/geom"
	"raycaster/internal/world"
)

// View3D draws one vertical wall slice per ray hit. Slice height falls off
// linearly with distance, brightness quadratically. The slice width divides
// the viewport by the hit count, so frames where rays miss stretch the
// surviving slices; that redistribution is the documented behavior, not a
// rounding artifact.
type View3D struct {
	viewport
}

func NewView3D(offset, width, height, screenHeight int) *View3D {
	return &View3D{viewport: newViewport(offset, width, height, screenHeight)}
}

func (v *View3D) Draw(s Surface, hits []world.RayHit, mapWidth int) {
	for i := range hits {
		w, h, b := v.slice(hits[i].Dist, len(hits), mapWidth)
		if h > 0 {
			s.FillRect(v.x+i*w, v.y+(v.height-h)/2, w, h, Gray(b))
		}
	}

	v.drawFrame(s)
}

// slice maps a perpendicular distance to the slice width, height and gray
// brightness percentage. Distances beyond mapWidth map to non-positive
// heights and are skipped by the caller.
func (v *View3D) slice(dist float64, hitCount, mapWidth int) (w, h int, brightness float64) {
	w = v.width / hitCount
	h = int(geom.MapRange(dist, 0, float64(mapWidth), float64(v.height), 0))
	brightness = geom.MapRange(dist*dist, 0, float64(mapWidth)*float64(mapWidth), 100, 0)
	return w, h, brightness
}
