package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

type GameState int

const (
	StateNone GameState = iota
	StateStartScreen
	StateRoundStart
	StateSelectFirst
	StateAnimateFirst
	StateSelectSecond
	StateAnimateSecond
	StateTurnEnd
	StateMixup
	StateShuffle
)

var gameStateNames = [...]string{
	StateNone:          "NONE",
	StateStartScreen:   "START_SCREEN",
	StateRoundStart:    "ROUND_START",
	StateSelectFirst:   "SELECT_FIRST",
	StateAnimateFirst:  "ANIMATE_FIRST",
	StateSelectSecond:  "SELECT_SECOND",
	StateAnimateSecond: "ANIMATE_SECOND",
	StateTurnEnd:       "TURN_END",
	StateMixup:         "MIXUP",
	StateShuffle:       "SHUFFLE",
}

func (gs GameState) String() string {
	if gs < 0 || int(gs) >= len(gameStateNames) {
		return fmt.Sprintf("GameState(%d)", int(gs))
	}
	return gameStateNames[gs]
}

const (
	flipRate     = 1.2
	animDuration = 1.0
)

// State is one node of the turn controller.
//
// Enter is called on the first tick the state becomes active, before Update.
// Exit is called on the tick Update returns another state.
type State interface {
	Enter(s *Session, f Frame)
	Update(s *Session, f Frame) GameState
	Exit(s *Session)
}

type baseState struct{}

func (baseState) Enter(s *Session, f Frame) {}
func (baseState) Exit(s *Session)           {}

// =================================
// drawing helpers
// =================================

func drawCard(cv Canvas, c *Card) {
	cv.FillRect(c.Rect(), c.Color())
}

func drawCards(cv Canvas, s *Session) {
	for i := range s.Cards {
		drawCard(cv, &s.Cards[i])
	}
}

func drawCardsWithHighlight(cv Canvas, s *Session, cursor FPoint) {
	for i := range s.Cards {
		c := &s.Cards[i]
		if cursor.In(c.Rect()) {
			cv.FillRect(c.HighlightRect(), ColorTable[ColorHighlight])
		}
		drawCard(cv, c)
	}
}

// =================================
// StartScreen
// =================================

type StartScreenState struct {
	baseState

	Button *TextButton
}

func NewStartScreenState() *StartScreenState {
	return &StartScreenState{
		Button: NewTextButton("Start"),
	}
}

func (st *StartScreenState) ButtonRect(screen FPoint) FRectangle {
	return FRectPosSize(
		FPt(screen.X/3, screen.Y*2/3),
		FPt(screen.X/3, screen.Y/6),
	)
}

func (st *StartScreenState) Update(s *Session, f Frame) GameState {
	cv := f.Canvas
	screen := cv.ScreenSize()

	st.Button.Rect = st.ButtonRect(screen)
	pressed := st.Button.Update(f.Input)
	st.Button.Draw(cv)

	// title
	{
		const title = "MEMORY"
		titleRect := FRect(
			screen.X*0.125, screen.Y*64/240,
			screen.X*0.875, screen.Y*128/240,
		)
		textSize := cv.MeasureText(title)
		if textSize.X > 0 && textSize.Y > 0 {
			cv.DrawText(titleRect.Min, title, ColorTable[ColorTitle], titleRect.Size().Div(textSize))
		}
	}

	if pressed {
		return StateRoundStart
	}

	return StateStartScreen
}

// =================================
// RoundStart
// =================================

type RoundStartState struct {
	baseState

	Layout RoundLayout

	Logger *log.Logger
}

func (st *RoundStartState) Enter(s *Session, f Frame) {
	st.Layout = s.StartRound(f.Canvas.ScreenSize())

	if st.Logger != nil {
		st.Logger.Info("round start",
			"round", s.RoundNumber,
			"field", fmt.Sprintf("%dx%d", st.Layout.FieldWidth, st.Layout.FieldHeight),
			"pairs", st.Layout.PairCount,
		)
	}
}

func (st *RoundStartState) Update(s *Session, f Frame) GameState {
	return StateSelectFirst
}

// =================================
// SelectFirst / SelectSecond
// =================================

type SelectFirstState struct {
	baseState
}

func (st *SelectFirstState) Update(s *Session, f Frame) GameState {
	cursor := f.Input.CursorPosition()

	drawCardsWithHighlight(f.Canvas, s, cursor)

	if f.PointerPressed() {
		if i := s.CardUnder(cursor, NoCard); i != NoCard {
			s.FirstCard = i
			return StateAnimateFirst
		}
	}

	return StateSelectFirst
}

type SelectSecondState struct {
	baseState
}

func (st *SelectSecondState) Update(s *Session, f Frame) GameState {
	cursor := f.Input.CursorPosition()

	drawCardsWithHighlight(f.Canvas, s, cursor)

	if f.PointerPressed() {
		// first card can't be picked again
		if i := s.CardUnder(cursor, s.FirstCard); i != NoCard {
			s.SecondCard = i
			return StateAnimateSecond
		}
	}

	return StateSelectSecond
}

// =================================
// AnimateFirst / AnimateSecond
// =================================

// RevealState flips one selected card face up.
type RevealState struct {
	baseState

	// which selection to reveal
	Second bool
	Next   GameState

	Timer Timer
}

func NewRevealState(second bool, next GameState) *RevealState {
	return &RevealState{
		Second: second,
		Next:   next,
		Timer:  NewTimer(animDuration, flipRate),
	}
}

func (st *RevealState) selected(s *Session) int {
	if st.Second {
		return s.SecondCard
	}
	return s.FirstCard
}

func (st *RevealState) Enter(s *Session, f Frame) {
	st.Timer.Reset()
}

func (st *RevealState) Update(s *Session, f Frame) GameState {
	st.Timer.TickUp(f.Delta)

	selected := st.selected(s)

	for i := range s.Cards {
		c := &s.Cards[i]

		if i != selected {
			drawCard(f.Canvas, c)
		} else {
			if st.Timer.PastHalf() {
				c.FaceUp = true
			}
			f.Canvas.FillRect(c.FlipRect(st.Timer.Normalize()), c.Color())
		}
	}

	if st.Timer.Done() {
		return st.Next
	}

	return st.currentState()
}

func (st *RevealState) currentState() GameState {
	if st.Second {
		return StateAnimateSecond
	}
	return StateAnimateFirst
}

// =================================
// TurnEnd
// =================================

type TurnEndState struct {
	baseState

	DidMatch bool

	Timer Timer

	Logger *log.Logger
}

func NewTurnEndState(logger *log.Logger) *TurnEndState {
	return &TurnEndState{
		Timer:  NewTimer(animDuration, flipRate),
		Logger: logger,
	}
}

func (st *TurnEndState) Enter(s *Session, f Frame) {
	st.DidMatch = s.SelectionMatches()
	st.Timer.Reset()
}

func (st *TurnEndState) Update(s *Session, f Frame) GameState {
	st.Timer.TickUp(f.Delta)

	t := st.Timer.Normalize()

	for i := range s.Cards {
		c := &s.Cards[i]

		if i != s.FirstCard && i != s.SecondCard {
			drawCard(f.Canvas, c)
			continue
		}

		if st.DidMatch {
			f.Canvas.FillRect(c.VanishRect(t), c.Color())
		} else {
			if st.Timer.PastHalf() {
				c.FaceUp = false
			}
			f.Canvas.FillRect(c.FlipRect(t), c.Color())
		}
	}

	if !st.Timer.Done() {
		return StateTurnEnd
	}

	st.resolve(s)

	if len(s.Cards) == 0 {
		return StateRoundStart
	}
	if s.RoundNumber > 2 {
		return StateShuffle
	}
	return StateMixup
}

func (st *TurnEndState) resolve(s *Session) {
	if st.DidMatch {
		if err := s.RemovePair(s.FirstCard, s.SecondCard); err != nil {
			// can't happen when selection went through SelectSecond
			st.logError("failed to remove pair", err)
			s.Score -= 1
			return
		}
		s.Score += 4
	} else {
		s.Score -= 1
	}
}

func (st *TurnEndState) logError(msg string, err error) {
	if st.Logger != nil {
		st.Logger.Error(msg, "err", err)
	}
}

func (st *TurnEndState) Exit(s *Session) {
	s.TurnNumber++
	s.ClearSelection()
}

// =================================
// Mixup
// =================================

type mixupInnerState int

const (
	mixupPick mixupInnerState = iota
	mixupAnimate
	mixupSkip
)

type MixupState struct {
	baseState

	inner mixupInnerState

	// swaps left, including the one being animated
	Remaining int

	Moves [2]Move

	Timer Timer

	Logger *log.Logger
}

func NewMixupState(logger *log.Logger) *MixupState {
	return &MixupState{
		Timer:  NewTimer(animDuration, 1),
		Logger: logger,
	}
}

func (st *MixupState) Enter(s *Session, f Frame) {
	st.Timer.Reset()
	st.Timer.Rate = PerturbRate(s.RoundNumber)
	st.Remaining = MixupCount(s.RoundNumber, s.TurnNumber)

	if st.Remaining > 0 && len(s.Cards) >= 2 {
		st.inner = mixupPick
	} else {
		st.inner = mixupSkip
	}
}

func (st *MixupState) pick(s *Session) {
	moves, err := s.PickSwap()
	if err != nil {
		if st.Logger != nil {
			st.Logger.Error("mixup pick failed", "err", err)
		}
		st.inner = mixupSkip
		return
	}

	st.Moves = moves
	st.Timer.Reset()
	st.inner = mixupAnimate
}

func (st *MixupState) animate(s *Session, delta float64) {
	st.Timer.TickUp(delta)

	s.ApplyMoves(st.Moves[:], st.Timer.Eased())

	if st.Timer.Done() {
		st.Remaining--
	}
}

func (st *MixupState) Update(s *Session, f Frame) GameState {
	var next GameState = StateMixup

	switch st.inner {
	case mixupPick:
		st.pick(s)
	case mixupAnimate:
		st.animate(s, f.Delta)
		if st.Remaining == 0 {
			next = StateSelectFirst
		} else if st.Timer.Done() {
			st.inner = mixupPick
		}
	case mixupSkip:
		next = StateSelectFirst
	}

	drawCards(f.Canvas, s)

	return next
}

// =================================
// Shuffle
// =================================

type ShuffleState struct {
	baseState

	Moves []Move

	Timer Timer
}

func NewShuffleState() *ShuffleState {
	return &ShuffleState{
		Timer: NewTimer(animDuration, 1),
	}
}

func (st *ShuffleState) Enter(s *Session, f Frame) {
	st.Timer.Reset()
	st.Timer.Rate = PerturbRate(s.RoundNumber)

	count := ShuffleCount(s.RoundNumber, s.TurnNumber, len(s.Cards))
	st.Moves = s.PlanShuffle(count)
}

func (st *ShuffleState) Update(s *Session, f Frame) GameState {
	st.Timer.TickUp(f.Delta)

	s.ApplyMoves(st.Moves, st.Timer.Eased())

	drawCards(f.Canvas, s)

	if st.Timer.Done() {
		return StateMixup
	}
	return StateShuffle
}

func (st *ShuffleState) Exit(s *Session) {
	st.Moves = nil
}
