/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"github.com/labstack/gommon/log"

	"raycaster/internal/app"
	"raycaster/internal/scene"
	"raycaster/internal/screen"
)

func main() {
	scr, err := screen.Open("Raycaster")
	if err != nil {
		log.Fatalf("open screen: %v", err)
	}
	defer scr.Close()

	app.Run(scr, scene.New(scr.Width(), scr.Height()))
	log.Info("game over")
}
