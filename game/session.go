package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

const NoCard = -1

var ErrBadSelection = errors.New("bad card selection")

// Session is the whole mutable state of one game.
//
// Cards are ordered the way they were laid out, column major
// (index = col * FieldHeight + row).
//
// Indices into Cards are invalidated by StartRound and RemovePair,
// nothing should hold on to them across those calls.
type Session struct {
	Cards []Card

	FieldWidth  int
	FieldHeight int

	RoundNumber int
	TurnNumber  int
	Score       int

	FirstCard  int
	SecondCard int

	Rand *rand.Rand
}

func NewSession(seed uint64) *Session {
	s := new(Session)

	s.TurnNumber = 1
	s.FirstCard = NoCard
	s.SecondCard = NoCard

	s.Rand = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	return s
}

func (s *Session) ClearSelection() {
	s.FirstCard = NoCard
	s.SecondCard = NoCard
}

func (s *Session) IsValidIndex(i int) bool {
	return 0 <= i && i < len(s.Cards)
}

// CardUnder returns index of the first card that contains pt,
// skipping the card at except. Returns NoCard if there is none.
func (s *Session) CardUnder(pt FPoint, except int) int {
	for i := range s.Cards {
		if i == except {
			continue
		}
		if pt.In(s.Cards[i].Rect()) {
			return i
		}
	}
	return NoCard
}

// SelectionMatches reports whether selected cards are a pair.
// Returns false when the selection is not two distinct valid cards.
func (s *Session) SelectionMatches() bool {
	if err := s.checkPair(s.FirstCard, s.SecondCard); err != nil {
		return false
	}
	return s.Cards[s.FirstCard].Matches(&s.Cards[s.SecondCard])
}

// RemovePair removes cards at a and b.
// Higher index goes first so the lower one stays valid.
func (s *Session) RemovePair(a, b int) error {
	if err := s.checkPair(a, b); err != nil {
		return err
	}

	hi, lo := max(a, b), min(a, b)
	s.Cards = slices.Delete(s.Cards, hi, hi+1)
	s.Cards = slices.Delete(s.Cards, lo, lo+1)

	return nil
}

func (s *Session) checkPair(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: same card %d twice", ErrBadSelection, a)
	}
	if !s.IsValidIndex(a) || !s.IsValidIndex(b) {
		return fmt.Errorf("%w: %d, %d out of %d cards", ErrBadSelection, a, b, len(s.Cards))
	}
	return nil
}

// CycleColors advances ambient hue of every card.
func (s *Session) CycleColors(delta float64) {
	for i := range s.Cards {
		s.Cards[i].CycleHue(delta)
	}
}

func (s *Session) HudLine() string {
	return fmt.Sprintf("Round: %d  Score: %d", s.RoundNumber, s.Score)
}

// Positions returns a copy of every card's position, in board order.
func (s *Session) Positions() []FPoint {
	positions := make([]FPoint, len(s.Cards))
	for i := range s.Cards {
		positions[i] = s.Cards[i].Pos
	}
	return positions
}
