package game

import (
	"image/color"
)

type ButtonState int

const (
	ButtonStateNormal ButtonState = iota
	ButtonStateHover
)

type TextButton struct {
	Rect FRectangle

	Text string

	BgColor        color.Color
	BgColorOnHover color.Color
	TextColor      color.Color

	// offset of text from Rect.Min
	TextOffset FPoint

	State ButtonState
}

func NewTextButton(text string) *TextButton {
	return &TextButton{
		Text:           text,
		BgColor:        ColorTable[ColorButton],
		BgColorOnHover: ColorTable[ColorButtonHover],
		TextColor:      ColorTable[ColorButtonText],
		TextOffset:     FPt(2, 2),
	}
}

// Update returns true when button was pressed this tick.
func (b *TextButton) Update(in Input) bool {
	inRect := in.CursorPosition().In(b.Rect)

	if inRect {
		b.State = ButtonStateHover
	} else {
		b.State = ButtonStateNormal
	}

	return inRect && in.IsMouseButtonJustPressed(MouseButtonLeft)
}

// Draw fills the button and stretches text over it.
func (b *TextButton) Draw(cv Canvas) {
	bgColor := b.BgColor
	if b.State == ButtonStateHover {
		bgColor = b.BgColorOnHover
	}

	cv.FillRect(b.Rect, bgColor)

	if len(b.Text) > 0 {
		textSize := cv.MeasureText(b.Text)
		if textSize.X <= 0 || textSize.Y <= 0 {
			return
		}
		scale := b.Rect.Size().Div(textSize)
		cv.DrawText(b.Rect.Min.Add(b.TextOffset), b.Text, b.TextColor, scale)
	}
}
