package main

import (
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"

	"memory/config"
	"memory/game"
)

type App struct {
	ShowDebugConsole bool

	Controller *game.Controller

	Canvas *Canvas
	Input  *PointerInput

	ScreenWidth  int
	ScreenHeight int

	// set in Update, handled in Draw once the frame is rendered
	screenshotRequested bool
}

func NewApp(cfg config.Config, seed uint64) *App {
	a := new(App)

	a.ScreenWidth = cfg.Window.Width
	a.ScreenHeight = cfg.Window.Height

	session := game.NewSession(seed)
	a.Controller = game.NewController(session, InfoLogger)

	a.Canvas = NewCanvas(game.FPt(float64(a.ScreenWidth), float64(a.ScreenHeight)))
	a.Input = NewPointerInput()

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	a.Input.Update()

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}
	if IsKeyJustPressed(ScreenshotKey) {
		a.screenshotRequested = true
	}
	if IsKeyJustPressed(CopyScoreKey) {
		ClipboardWriteText(a.Controller.Session.HudLine())
	}

	// ==========================
	// game
	// ==========================
	a.Canvas.Reset()
	a.Controller.Update(1/float64(eb.TPS()), a.Input, a.Canvas)

	// ==========================
	// DebugPrint
	// ==========================
	s := a.Controller.Session

	DebugPrint("FPS", fmt.Sprintf("%.2f", eb.ActualFPS()))
	DebugPrint("TPS", fmt.Sprintf("%.2f", eb.ActualTPS()))
	DebugPrint("State", a.Controller.State())
	DebugPrint("Round", s.RoundNumber)
	DebugPrint("Turn", s.TurnNumber)
	DebugPrint("Score", s.Score)
	DebugPrint("Cards", len(s.Cards))

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Canvas.Replay(dst)

	if a.screenshotRequested {
		a.screenshotRequested = false
		if name, err := TakeScreenshot(dst); err != nil {
			ErrLogger.Error("failed to take screenshot", "error", err)
		} else {
			InfoLogger.Info("saved screenshot", "file", name)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenWidth, a.ScreenHeight
}
