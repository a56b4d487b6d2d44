/*
 * Copyright (C) 2023 by Jason Figge
 */

package app

import "github.com/veandco/go-sdl2/sdl"

const (
	rotateStep = 0.5 // degrees per frame while a turn key is held
	moveStep   = 0.5 // map units per frame while a move key is held
)

// input is the per-frame velocity state derived from held keys, plus the
// quit flag.
type input struct {
	da, dd float64
	quit   bool
}

func (in *input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		in.quit = true
	case *sdl.KeyboardEvent:
		switch e.Type {
		case sdl.KEYDOWN:
			in.keyDown(e.Keysym.Sym)
		case sdl.KEYUP:
			in.keyUp(e.Keysym.Sym)
		}
	}
}

func (in *input) keyDown(key sdl.Keycode) {
	switch key {
	case sdl.K_LEFT:
		in.da = -rotateStep
	case sdl.K_RIGHT:
		in.da = rotateStep
	case sdl.K_UP:
		in.dd = moveStep
	case sdl.K_DOWN:
		in.dd = -moveStep
	case sdl.K_ESCAPE:
		in.quit = true
	}
}

// keyUp clears a delta only when its sign matches the released key, so
// releasing the first of two opposing held keys keeps the survivor's
// motion.
func (in *input) keyUp(key sdl.Keycode) {
	switch key {
	case sdl.K_LEFT:
		if in.da < 0 {
			in.da = 0
		}
	case sdl.K_RIGHT:
		if in.da > 0 {
			in.da = 0
		}
	case sdl.K_UP:
		if in.dd > 0 {
			in.dd = 0
		}
	case sdl.K_DOWN:
		if in.dd < 0 {
			in.dd = 0
		}
	}
}
