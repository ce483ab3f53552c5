package game

import (
	"image/color"
	"math"
)

type Card struct {
	BackColor color.NRGBA
	// cards with same FrontColor are a pair
	FrontColor color.NRGBA

	Pos  FPoint
	Size FPoint

	FaceUp bool

	Hue      float64 // degrees
	HueSpeed float64
}

func (c *Card) Rect() FRectangle {
	return FRectPosSize(c.Pos, c.Size)
}

// Color returns the color of the side that is currently showing.
func (c *Card) Color() color.NRGBA {
	if c.FaceUp {
		return c.FrontColor
	}
	return c.BackColor
}

func (c *Card) Matches(other *Card) bool {
	return c.FrontColor == other.FrontColor
}

// CycleHue advances card's back color around the color wheel.
func (c *Card) CycleHue(delta float64) {
	c.Hue += delta * c.HueSpeed * 2
	c.Hue = math.Mod(c.Hue, 360)

	c.BackColor = ColorFromHSV(c.Hue, 1, 1)
}

// FlipRect is the rectangle of a card in the middle of horizontal flip.
// t is the normalized time of the flip.
func (c *Card) FlipRect(t float64) FRectangle {
	f := Fold(t)
	pos := c.Pos.Add(FPt((1-f)*c.Size.X*0.5, 0))
	size := FPt(f*c.Size.X, c.Size.Y)
	return FRectPosSize(pos, size)
}

// VanishRect is the rectangle of a matched card sliding out.
// t is the normalized time of the animation.
func (c *Card) VanishRect(t float64) FRectangle {
	e := Ease(t)
	pos := c.Pos.Add(FPt(e*c.Size.X*0.5, 0))
	size := FPt((1-e)*c.Size.X, c.Size.Y)
	return FRectPosSize(pos, size)
}

// HighlightRect is the halo drawn behind a hovered card.
func (c *Card) HighlightRect() FRectangle {
	fudge := c.Size.Scale(0.03)
	return FRectPosSize(c.Pos.Sub(fudge), c.Size.Add(fudge.Scale(2)))
}
