package game

import (
	"fmt"
	"image/color"
	"math"

	css "github.com/mazznoer/csscolorparser"
)

// ColorFromHSV converts hue in degrees, saturation and value to color.
// Hue is clamped to [0, 360], saturation and value to [0, 1].
func ColorFromHSV(hue, saturation, value float64) color.NRGBA {
	hue = Clamp(hue, 0, 360)
	saturation = Clamp(saturation, 0, 1)
	value = Clamp(value, 0, 1)

	c := saturation * value
	h := hue / 60
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	if saturation == 0 {
		r, g, b = 0, 0, 0
	} else if h < 1 {
		r, g, b = c, x, 0
	} else if h < 2 {
		r, g, b = x, c, 0
	} else if h < 3 {
		r, g, b = 0, c, x
	} else if h < 4 {
		r, g, b = 0, x, c
	} else if h < 5 {
		r, g, b = x, 0, c
	} else {
		r, g, b = c, 0, x
	}

	m := value - c

	r, g, b = r+m, g+m, b+m

	r = Clamp(r, 0, 1)
	g = Clamp(g, 0, 1)
	b = Clamp(b, 0, 1)

	return color.NRGBA{to255(r), to255(g), to255(b), 255}
}

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColorString parses any css color string ("navy", "#404040", "rgb(1,2,3)", ...).
func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: to255(c.R),
		G: to255(c.G),
		B: to255(c.B),
		A: to255(c.A),
	}

	return nrgba, nil
}

// MustParseColor is like ParseColorString but panics on error.
// Only use it with hard coded colors.
func MustParseColor(str string) color.NRGBA {
	c, err := ParseColorString(str)
	if err != nil {
		panic(fmt.Sprintf("MustParseColor: %q: %v", str, err))
	}
	return c
}

func to255(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 1) * 255))
}

// CardPalette is the set of front colors pairs are dealt from.
// Pair i gets CardPalette[i % len(CardPalette)].
var CardPalette = [...]color.NRGBA{
	MustParseColor("silver"),
	MustParseColor("lime"),
	MustParseColor("yellow"),
	MustParseColor("magenta"),
	MustParseColor("cyan"),
	MustParseColor("maroon"),
	MustParseColor("blue"),
	MustParseColor("#404040"),
	MustParseColor("green"),
	MustParseColor("olive"),
	MustParseColor("purple"),
	MustParseColor("teal"),
	MustParseColor("black"),
	MustParseColor("white"),
}
