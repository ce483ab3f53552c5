package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"memory/game"
)

var BasicFace = ebt.NewGoXFace(basicfont.Face7x13)

type drawCmdKind int

const (
	drawCmdFill drawCmdKind = iota
	drawCmdText
)

type drawCmd struct {
	Kind drawCmdKind

	Rect game.FRectangle // fill

	Pos   game.FPoint // text
	Text  string
	Scale game.FPoint

	Color color.Color
}

// Canvas records what game asks to draw during Update
// and replays it on the screen in Draw.
type Canvas struct {
	Screen game.FPoint

	cmds []drawCmd
}

func NewCanvas(screen game.FPoint) *Canvas {
	return &Canvas{Screen: screen}
}

func (cv *Canvas) Reset() {
	cv.cmds = cv.cmds[:0]
}

func (cv *Canvas) FillRect(rect game.FRectangle, clr color.Color) {
	cv.cmds = append(cv.cmds, drawCmd{
		Kind:  drawCmdFill,
		Rect:  rect,
		Color: clr,
	})
}

func (cv *Canvas) DrawText(pos game.FPoint, text string, clr color.Color, scale game.FPoint) {
	cv.cmds = append(cv.cmds, drawCmd{
		Kind:  drawCmdText,
		Pos:   pos,
		Text:  text,
		Scale: scale,
		Color: clr,
	})
}

func (cv *Canvas) MeasureText(text string) game.FPoint {
	w, h := ebt.Measure(text, BasicFace, 0)
	return game.FPt(w, h)
}

func (cv *Canvas) ScreenSize() game.FPoint {
	return cv.Screen
}

func (cv *Canvas) Replay(dst *eb.Image) {
	for _, cmd := range cv.cmds {
		switch cmd.Kind {
		case drawCmdFill:
			DrawFilledRect(dst, cmd.Rect, cmd.Color, false)
		case drawCmdText:
			op := &ebt.DrawOptions{}
			op.GeoM.Scale(cmd.Scale.X, cmd.Scale.Y)
			op.GeoM.Translate(cmd.Pos.X, cmd.Pos.Y)
			op.ColorScale.ScaleWithColor(cmd.Color)
			ebt.Draw(dst, cmd.Text, BasicFace, op)
		}
	}
}

func DrawFilledRect(
	dst *eb.Image,
	rect game.FRectangle,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		antialias,
	)
}

func f32(f float64) float32 {
	return float32(f)
}
