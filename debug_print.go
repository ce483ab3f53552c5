package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"

	"memory/game"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	if len(dm.DebugMsgs) == 0 {
		return
	}

	dm.builder.Reset()

	for i, msg := range dm.DebugMsgs {
		// builder doesn't actually errors out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		if i != len(dm.DebugMsgs)-1 {
			dm.builder.WriteString("\n")
		}
	}

	const hozMargin = 3
	const vertMargin = 3

	lineSpacing := BasicFace.Metrics().HAscent + BasicFace.Metrics().HDescent + 1

	text := dm.builder.String()

	w, h := ebt.Measure(text, BasicFace, lineSpacing)

	boxW, boxH := w+hozMargin*2, h+vertMargin*2

	bounds := dst.Bounds()
	rect := game.FRectPosSize(
		game.FPt(float64(bounds.Max.X)-boxW, float64(bounds.Max.Y)-boxH),
		game.FPt(boxW, boxH),
	)

	// draw background
	DrawFilledRect(dst, rect, color.NRGBA{255, 255, 255, 255}, false)
	DrawFilledRect(dst, rect.Inset(1), color.NRGBA{0, 0, 0, 200}, false)

	// draw text
	op := &ebt.DrawOptions{}
	op.GeoM.Translate(rect.Min.X+hozMargin, rect.Min.Y+vertMargin)
	op.ColorScale.ScaleWithColor(color.NRGBA{255, 255, 255, 255})
	op.LineSpacing = lineSpacing

	ebt.Draw(dst, text, BasicFace, op)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
