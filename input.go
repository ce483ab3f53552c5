package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"memory/game"
)

// PointerInput merges mouse and touch into one pointer.
type PointerInput struct {
	Cursor game.FPoint

	touchPressed bool
	touchID      eb.TouchID
	touching     bool

	justTouchedBuf []eb.TouchID
}

func NewPointerInput() *PointerInput {
	return new(PointerInput)
}

func (in *PointerInput) Update() {
	in.touchPressed = false

	in.justTouchedBuf = ebi.AppendJustPressedTouchIDs(in.justTouchedBuf[:0])
	if len(in.justTouchedBuf) > 0 {
		in.touchID = in.justTouchedBuf[0]
		in.touching = true
		in.touchPressed = true
	}

	if in.touching && ebi.IsTouchJustReleased(in.touchID) {
		in.touching = false
	}

	if in.touching || in.touchPressed {
		x, y := eb.TouchPosition(in.touchID)
		in.Cursor = game.FPt(float64(x), float64(y))
	} else {
		x, y := eb.CursorPosition()
		in.Cursor = game.FPt(float64(x), float64(y))
	}
}

func (in *PointerInput) CursorPosition() game.FPoint {
	return in.Cursor
}

func (in *PointerInput) IsMouseButtonJustPressed(button game.MouseButton) bool {
	if button == game.MouseButtonLeft && in.touchPressed {
		return true
	}
	return ebi.IsMouseButtonJustPressed(toEbMouseButton(button))
}

func toEbMouseButton(button game.MouseButton) eb.MouseButton {
	switch button {
	case game.MouseButtonRight:
		return eb.MouseButtonRight
	case game.MouseButtonMiddle:
		return eb.MouseButtonMiddle
	default:
		return eb.MouseButtonLeft
	}
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}
