/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package screen wraps the SDL window and renderer behind the primitive
// draw operations the views consume.
package screen

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/veandco/go-sdl2/sdl"

	"raycaster/internal/view"
)

// Screen is the rendering surface: a fullscreen-desktop window with the
// render size locked to the desktop resolution.
type Screen struct {
	width, height int
	window        *sdl.Window
	renderer      *sdl.Renderer
}

func Open(title string) (*Screen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		return nil, fmt.Errorf("query display mode: %w", err)
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(0, 0, sdl.WINDOW_FULLSCREEN_DESKTOP)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetTitle(title)

	if err = renderer.SetLogicalSize(mode.W, mode.H); err != nil {
		return nil, fmt.Errorf("set logical size: %w", err)
	}

	s := &Screen{
		width:    int(mode.W),
		height:   int(mode.H),
		window:   window,
		renderer: renderer,
	}
	s.Clear()
	return s, nil
}

func (s *Screen) Close() {
	if s.renderer != nil {
		trap(s.renderer.Destroy())
		s.renderer = nil
	}
	if s.window != nil {
		trap(s.window.Destroy())
		s.window = nil
	}
	sdl.Quit()
}

func (s *Screen) Width() int {
	return s.width
}

func (s *Screen) Height() int {
	return s.height
}

func (s *Screen) Clear() {
	trap(s.renderer.SetDrawColor(0, 0, 0, 0xff))
	trap(s.renderer.Clear())
}

func (s *Screen) Present() {
	s.renderer.Present()
}

func (s *Screen) DrawLine(x1, y1, x2, y2 int, c view.Color) {
	s.setDrawColor(c)
	trap(s.renderer.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2)))
}

func (s *Screen) DrawRect(x, y, w, h int, c view.Color) {
	s.setDrawColor(c)
	trap(s.renderer.DrawRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}))
}

func (s *Screen) FillRect(x, y, w, h int, c view.Color) {
	s.setDrawColor(c)
	trap(s.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}))
}

func (s *Screen) setDrawColor(c view.Color) {
	trap(s.renderer.SetDrawColor(c.R, c.G, c.B, 0xff))
}

// trap aborts on renderer errors. Draw failures leave nothing sensible to
// recover to mid-frame.
func trap(err error) {
	if err != nil {
		log.Fatalf("render: %v", err)
	}
}
