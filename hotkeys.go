package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1
	ScreenshotKey       = eb.KeyP
	CopyScoreKey        = eb.KeyC
)
