package game

import (
	"image/color"
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Input is the pointer state for the current tick.
type Input interface {
	CursorPosition() FPoint
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Canvas receives draw requests.
// Requests are issued in paint order, later ones draw over earlier ones.
type Canvas interface {
	FillRect(rect FRectangle, clr color.Color)
	DrawText(pos FPoint, text string, clr color.Color, scale FPoint)
	MeasureText(text string) FPoint
	ScreenSize() FPoint
}

// Frame is what a state gets on every tick.
type Frame struct {
	Delta  float64 // elapsed seconds since last tick
	Input  Input
	Canvas Canvas
}

func (f Frame) PointerPressed() bool {
	return f.Input.IsMouseButtonJustPressed(MouseButtonLeft)
}
