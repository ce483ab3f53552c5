package game

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

var testScreen = FPt(256, 240)

func TestFieldSize(t *testing.T) {
	tests := []struct {
		round  int
		width  int
		height int
		pairs  int
	}{
		{1, 4, 4, 8},
		{2, 5, 4, 10},
		{3, 5, 4, 10},
		{5, 5, 4, 10},
		{6, 6, 5, 15},
		{11, 6, 6, 18},
		{18, 8, 7, 28},
	}

	for _, tc := range tests {
		l := ComputeLayout(tc.round, testScreen)
		if l.FieldWidth != tc.width || l.FieldHeight != tc.height {
			t.Errorf("round %d: field %dx%d, expected %dx%d",
				tc.round, l.FieldWidth, l.FieldHeight, tc.width, tc.height)
		}
		if l.PairCount != tc.pairs {
			t.Errorf("round %d: PairCount = %d, expected %d", tc.round, l.PairCount, tc.pairs)
		}
	}
}

func TestFieldSizeProperties(t *testing.T) {
	for round := 1; round <= 200; round++ {
		w, h := FieldSize(round)
		if w < h {
			t.Errorf("round %d: width %d < height %d", round, w, h)
		}
		if w*h < 2 {
			t.Errorf("round %d: only %d slots", round, w*h)
		}
	}
}

func TestMinCardGap(t *testing.T) {
	tests := []struct {
		round    int
		expected float64
	}{
		{1, 8},
		{4, 7},
		{9, 6},
		{64, 1},
		{1000, 1},
	}

	for _, tc := range tests {
		if got := MinCardGap(tc.round); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("MinCardGap(%d) = %v, expected %v", tc.round, got, tc.expected)
		}
	}
}

func TestCardsFitScreen(t *testing.T) {
	for round := 1; round <= 30; round++ {
		l := ComputeLayout(round, testScreen)

		ratio := l.CardSize.X / l.CardSize.Y
		if math.Abs(ratio-CardAspectRatio) > 1e-9 {
			t.Errorf("round %d: card ratio %v, expected %v", round, ratio, CardAspectRatio)
		}

		if l.Gap.X < l.MinGap-1e-9 || l.Gap.Y < l.MinGap-1e-9 {
			t.Errorf("round %d: gap %v smaller than min gap %v", round, l.Gap, l.MinGap)
		}

		cards := l.Deal(rand.New(rand.NewPCG(1, 2)))
		for i := range cards {
			r := cards[i].Rect()
			if r.Min.X < 0 || r.Max.X > testScreen.X+1e-9 ||
				r.Min.Y < 0 || r.Max.Y > testScreen.Y+FieldTopMargin+1e-9 {
				t.Errorf("round %d: card %d at %v is off screen", round, i, r)
			}
			for j := i + 1; j < len(cards); j++ {
				if r.Overlaps(cards[j].Rect()) {
					t.Errorf("round %d: cards %d and %d overlap", round, i, j)
				}
			}
		}
	}
}

func TestDealPairsUp(t *testing.T) {
	for round := 1; round <= 12; round++ {
		l := ComputeLayout(round, testScreen)
		cards := l.Deal(rand.New(rand.NewPCG(uint64(round), 3)))

		if len(cards) != l.PairCount*2 {
			t.Fatalf("round %d: %d cards, expected %d", round, len(cards), l.PairCount*2)
		}
		if len(cards)%2 != 0 {
			t.Errorf("round %d: odd card count %d", round, len(cards))
		}

		counts := make(map[color.NRGBA]int)
		for _, c := range cards {
			counts[c.FrontColor]++
			if c.FaceUp {
				t.Errorf("round %d: card dealt face up", round)
			}
			if c.BackColor != ColorTable[ColorCardBack] {
				t.Errorf("round %d: back color %v", round, c.BackColor)
			}
			if c.HueSpeed < 0 || c.HueSpeed >= 1 {
				t.Errorf("round %d: hue speed %v", round, c.HueSpeed)
			}
		}

		for clr, n := range counts {
			// palette wraps after 14 pairs, a color then backs more than one pair
			if l.PairCount <= len(CardPalette) && n != 2 {
				t.Errorf("round %d: color %s appears %d times", round, ColorToString(clr), n)
			}
			if n%2 != 0 {
				t.Errorf("round %d: color %s appears odd %d times", round, ColorToString(clr), n)
			}
		}
	}
}

func TestDealFillsSlotsColumnMajor(t *testing.T) {
	l := ComputeLayout(2, testScreen)
	cards := l.Deal(rand.New(rand.NewPCG(5, 5)))

	for x := 0; x < l.FieldWidth; x++ {
		for y := 0; y < l.FieldHeight; y++ {
			idx := x*l.FieldHeight + y
			if !cards[idx].Pos.Eq(l.SlotPos(x, y)) {
				t.Errorf("card %d at %v, expected slot (%d, %d) %v",
					idx, cards[idx].Pos, x, y, l.SlotPos(x, y))
			}
		}
	}
}

func TestDealLeavesOddSlotEmpty(t *testing.T) {
	l := RoundLayout{
		FieldWidth:  3,
		FieldHeight: 3,
		PairCount:   4,
		CardSize:    FPt(10, 14),
		Gap:         FPt(2, 2),
	}

	cards := l.Deal(rand.New(rand.NewPCG(1, 1)))
	if len(cards) != 8 {
		t.Errorf("len(cards) = %d, expected 8", len(cards))
	}
}

func TestStartRound(t *testing.T) {
	s := NewSession(1)
	s.TurnNumber = 9
	s.FirstCard = 3

	s.StartRound(testScreen)

	if s.RoundNumber != 1 || s.TurnNumber != 1 {
		t.Errorf("round %d turn %d, expected 1 1", s.RoundNumber, s.TurnNumber)
	}
	if s.FirstCard != NoCard {
		t.Errorf("selection not cleared")
	}
	if len(s.Cards) != 16 {
		t.Errorf("len(Cards) = %d, expected 16", len(s.Cards))
	}

	s.StartRound(testScreen)
	if s.RoundNumber != 2 || len(s.Cards) != 20 {
		t.Errorf("round %d with %d cards, expected round 2 with 20", s.RoundNumber, len(s.Cards))
	}
}
