package game

import (
	"fmt"
	"image/color"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorCardBack
	ColorHighlight

	ColorButton
	ColorButtonHover
	ColorButtonText

	ColorTitle
	ColorHud

	ColorTableSize
)

var colorTableNames = [ColorTableSize]string{
	ColorBg:          "background",
	ColorCardBack:    "card_back",
	ColorHighlight:   "highlight",
	ColorButton:      "button",
	ColorButtonHover: "button_hover",
	ColorButtonText:  "button_text",
	ColorTitle:       "title",
	ColorHud:         "hud",
}

func (i ColorTableIndex) String() string {
	if i < 0 || i >= ColorTableSize {
		return fmt.Sprintf("ColorTableIndex(%d)", int(i))
	}
	return colorTableNames[i]
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	ColorTable = DefaultColorTable()
}

func DefaultColorTable() [ColorTableSize]color.NRGBA {
	var table [ColorTableSize]color.NRGBA

	table[ColorBg] = MustParseColor("navy")

	table[ColorCardBack] = MustParseColor("red")
	table[ColorHighlight] = MustParseColor("silver")

	table[ColorButton] = MustParseColor("gray")
	table[ColorButtonHover] = MustParseColor("#a0a0a0")
	table[ColorButtonText] = MustParseColor("black")

	table[ColorTitle] = MustParseColor("white")
	table[ColorHud] = MustParseColor("white")

	return table
}

// ColorTableFromStrings returns base with entries replaced by css colors in overrides.
// Keys are the names returned by ColorTableIndex.String.
func ColorTableFromStrings(
	base [ColorTableSize]color.NRGBA,
	overrides map[string]string,
) ([ColorTableSize]color.NRGBA, error) {
	stringToIndex := make(map[string]ColorTableIndex)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = i
	}

	for name, str := range overrides {
		index, ok := stringToIndex[name]
		if !ok {
			return base, fmt.Errorf("unknown color %q", name)
		}
		c, err := ParseColorString(str)
		if err != nil {
			return base, fmt.Errorf("color %q: %w", name, err)
		}
		base[index] = c
	}

	return base, nil
}
