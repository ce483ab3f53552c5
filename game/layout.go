package game

import (
	"math"
	"math/rand/v2"
)

const (
	// width over height
	CardAspectRatio = 2.5 / 3.5

	// space reserved above the field for hud text
	FieldTopMargin = 2.0

	basePairCount = 7
)

type RoundLayout struct {
	FieldWidth  int
	FieldHeight int

	// pairs actually dealt, derived from the slot count
	PairCount int

	MinGap   float64
	CardSize FPoint
	Gap      FPoint
}

func DesiredPairCount(round int) int {
	return basePairCount + round
}

// FieldSize returns grid shape for a round.
// Width is rounded up and height down so width is never less than height.
func FieldSize(round int) (int, int) {
	desiredCardCount := DesiredPairCount(round) * 2

	width := int(math.Ceil(math.Sqrt(f64(desiredCardCount))))
	height := int(math.Floor(math.Sqrt(f64(desiredCardCount))))

	width = max(width, 1)
	height = max(height, 1)

	if width*height < 2 {
		width = 2
	}

	return width, height
}

func MinCardGap(round int) float64 {
	return 8 - min(7, math.Sqrt(f64(round))-1)
}

// ComputeLayout fits a near square grid of cards for the round into screen.
func ComputeLayout(round int, screen FPoint) RoundLayout {
	var l RoundLayout

	l.FieldWidth, l.FieldHeight = FieldSize(round)
	l.PairCount = (l.FieldWidth * l.FieldHeight) / 2
	l.MinGap = MinCardGap(round)

	fieldDim := FPt(f64(l.FieldWidth), f64(l.FieldHeight))

	maxCardWidth := (screen.X - (fieldDim.X+1)*l.MinGap) / fieldDim.X
	maxCardHeight := (screen.Y - (fieldDim.Y+1)*l.MinGap) / fieldDim.Y

	widthFromHeight := maxCardHeight * CardAspectRatio

	if widthFromHeight <= maxCardWidth {
		l.CardSize = FPt(widthFromHeight, maxCardHeight)
	} else {
		l.CardSize = FPt(maxCardWidth, maxCardWidth/CardAspectRatio)
	}

	l.Gap = screen.Sub(l.CardSize.Mul(fieldDim)).Div(fieldDim.Add(FPt(1, 1)))

	return l
}

// SlotPos is the top left of the card at grid position x, y.
func (l RoundLayout) SlotPos(x, y int) FPoint {
	fx, fy := f64(x), f64(y)
	return FPt(fx, fy).Mul(l.CardSize).
		Add(FPt(fx+1, fy+1).Mul(l.Gap)).
		Add(FPt(0, FieldTopMargin))
}

// Deal creates the cards for the layout, shuffled with rng.
func (l RoundLayout) Deal(rng *rand.Rand) []Card {
	cards := make([]Card, 0, l.PairCount*2)

	for i := 0; i < l.PairCount; i++ {
		front := CardPalette[i%len(CardPalette)]
		for range 2 {
			cards = append(cards, Card{
				BackColor:  ColorTable[ColorCardBack],
				FrontColor: front,
				Size:       l.CardSize,
				HueSpeed:   rng.Float64(),
			})
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	for x := 0; x < l.FieldWidth; x++ {
		for y := 0; y < l.FieldHeight; y++ {
			idx := x*l.FieldHeight + y
			// odd slot count leaves the last slot empty
			if idx >= len(cards) {
				continue
			}
			cards[idx].Pos = l.SlotPos(x, y)
		}
	}

	return cards
}

// StartRound advances to the next round and deals a fresh board.
func (s *Session) StartRound(screen FPoint) RoundLayout {
	s.TurnNumber = 1
	s.RoundNumber++

	l := ComputeLayout(s.RoundNumber, screen)

	s.FieldWidth = l.FieldWidth
	s.FieldHeight = l.FieldHeight
	s.Cards = l.Deal(s.Rand)
	s.ClearSelection()

	return l
}

func f64(v int) float64 {
	return float64(v)
}
