/*
 * Copyright (C) 2023 by Jason Figge
 */

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyDownSetsDeltas(t *testing.T) {
	in := input{}

	in.keyDown(sdl.K_LEFT)
	assert.Equal(t, -rotateStep, in.da)
	in.keyDown(sdl.K_RIGHT)
	assert.Equal(t, rotateStep, in.da)

	in.keyDown(sdl.K_UP)
	assert.Equal(t, moveStep, in.dd)
	in.keyDown(sdl.K_DOWN)
	assert.Equal(t, -moveStep, in.dd)
}

func TestKeyUpClearsOnlyMatchingSign(t *testing.T) {
	in := input{}

	// Holding right, then tapping and releasing left must not cancel the
	// still-held right turn.
	in.keyDown(sdl.K_RIGHT)
	in.keyUp(sdl.K_LEFT)
	assert.Equal(t, rotateStep, in.da)
	in.keyUp(sdl.K_RIGHT)
	assert.Equal(t, 0.0, in.da)

	in.keyDown(sdl.K_DOWN)
	in.keyUp(sdl.K_UP)
	assert.Equal(t, -moveStep, in.dd)
	in.keyUp(sdl.K_DOWN)
	assert.Equal(t, 0.0, in.dd)
}

func TestQuitSignals(t *testing.T) {
	in := input{}
	in.handle(&sdl.QuitEvent{Type: sdl.QUIT})
	assert.True(t, in.quit)

	in = input{}
	in.keyDown(sdl.K_ESCAPE)
	assert.True(t, in.quit)
}
