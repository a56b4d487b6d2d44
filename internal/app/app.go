/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package app runs the synchronous frame loop: drain pending events, apply
// the frame's deltas, draw both views, present, sleep.
package app

import (
	"github.com/labstack/gommon/log"
	"github.com/veandco/go-sdl2/sdl"

	"raycaster/internal/scene"
	"raycaster/internal/screen"
)

const frameDelayMS = 10

// Run drives the loop until the quit signal. Everything happens on the
// calling goroutine; the scene is never touched from anywhere else.
func Run(scr *screen.Screen, sc *scene.Scene) {
	log.Infof("entering frame loop, %dx%d", scr.Width(), scr.Height())

	in := input{}
	for !in.quit {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			in.handle(event)
		}

		sc.Move(in.da, in.dd)
		scr.Clear()
		sc.Draw(scr)
		scr.Present()
		sdl.Delay(frameDelayMS)
	}
}
