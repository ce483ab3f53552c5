package game

import (
	"errors"
	"math"
)

var ErrTooFewCards = errors.New("need at least two cards")

// MixupCount is how many swaps happen between turns.
func MixupCount(round, turn int) int {
	return int(math.Floor(math.Sqrt(f64(round + max(-1, turn-5)))))
}

// ShuffleCount is how many cards get relocated by a shuffle, never more than cardCount.
func ShuffleCount(round, turn, cardCount int) int {
	return min(cardCount, int(math.Floor(f64(round)+math.Sqrt(f64(turn)))))
}

// PerturbRate is the time scale of mixup and shuffle animations.
func PerturbRate(round int) float64 {
	return 1 + f64(round-1)*0.5
}

// Move is a card traveling from one slot to another.
type Move struct {
	Index int
	From  FPoint
	To    FPoint
}

func (m Move) At(t float64) FPoint {
	return LerpFPoint(m.From, m.To, t)
}

// PickSwap picks two distinct cards and returns moves that swap their positions.
func (s *Session) PickSwap() ([2]Move, error) {
	var moves [2]Move

	n := len(s.Cards)
	if n < 2 {
		return moves, ErrTooFewCards
	}

	one := s.Rand.IntN(n)
	two := s.Rand.IntN(n)
	for one == two {
		two = s.Rand.IntN(n)
	}

	moves[0] = Move{Index: one, From: s.Cards[one].Pos, To: s.Cards[two].Pos}
	moves[1] = Move{Index: two, From: s.Cards[two].Pos, To: s.Cards[one].Pos}

	return moves, nil
}

// PlanShuffle picks count distinct cards and sends each of them to the slot
// of another picked card. Targets are a permutation of the picked slots,
// so no position is made up.
func (s *Session) PlanShuffle(count int) []Move {
	count = Clamp(count, 0, len(s.Cards))

	indices := s.Rand.Perm(len(s.Cards))

	moves := make([]Move, count)
	for i := 0; i < count; i++ {
		moves[i].Index = indices[i]
		moves[i].From = s.Cards[indices[i]].Pos
	}

	picked := indices[:count]
	s.Rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	for i := 0; i < count; i++ {
		moves[i].To = s.Cards[picked[i]].Pos
	}

	return moves
}

// ApplyMoves places every moved card at its eased position for t.
func (s *Session) ApplyMoves(moves []Move, t float64) {
	for _, m := range moves {
		if s.IsValidIndex(m.Index) {
			s.Cards[m.Index].Pos = m.At(t)
		}
	}
}
