/*
 * Copyright (C) 2023 by Jason Figge
 */

package geom

// Mix linearly interpolates between start and end at parameter t.
func Mix(start, end, t float64) float64 {
	return start + (end-start)*t
}

// MapRange maps x from the input range to the output range. Values outside
// the input range extrapolate; nothing is clamped.
func MapRange(x, inMin, inMax, outMin, outMax float64) float64 {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
