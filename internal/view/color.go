/*
 * Copyright (C) 2023 by Jason Figge
 */

package view

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{0xff, 0xff, 0xff}
	frame = Color{0, 50, 100}
)

// Gray converts a brightness percentage to a gray color, rounded and
// clamped to the byte range.
func Gray(percent float64) Color {
	w := percent / 100.0 * 255.0
	v := int(w + 0.5)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return Color{uint8(v), uint8(v), uint8(v)}
}
