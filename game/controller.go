package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// Controller drives the game one tick at a time.
// Only the active state touches the session during a tick.
type Controller struct {
	Session *Session

	States map[GameState]State

	current GameState
	prev    GameState

	logger *log.Logger
}

func NewController(session *Session, logger *log.Logger) *Controller {
	c := new(Controller)

	if logger == nil {
		logger = log.New(io.Discard)
	}

	c.Session = session
	c.logger = logger

	c.States = map[GameState]State{
		StateStartScreen:   NewStartScreenState(),
		StateRoundStart:    &RoundStartState{Logger: logger},
		StateSelectFirst:   &SelectFirstState{},
		StateAnimateFirst:  NewRevealState(false, StateSelectSecond),
		StateSelectSecond:  &SelectSecondState{},
		StateAnimateSecond: NewRevealState(true, StateTurnEnd),
		StateTurnEnd:       NewTurnEndState(logger),
		StateMixup:         NewMixupState(logger),
		StateShuffle:       NewShuffleState(),
	}

	c.current = StateStartScreen
	c.prev = StateNone

	return c
}

func (c *Controller) State() GameState {
	return c.current
}

// Update runs one tick of the active state.
// delta is elapsed seconds since the last tick.
func (c *Controller) Update(delta float64, in Input, cv Canvas) {
	f := Frame{
		Delta:  delta,
		Input:  in,
		Canvas: cv,
	}

	cv.FillRect(FRectPosSize(FPt(0, 0), cv.ScreenSize()), ColorTable[ColorBg])

	state, ok := c.States[c.current]
	if !ok {
		// every GameState but StateNone is registered in NewController
		panic("Controller: no state for " + c.current.String())
	}

	if c.current != c.prev {
		state.Enter(c.Session, f)
	}

	next := state.Update(c.Session, f)

	if next != c.current {
		state.Exit(c.Session)
		c.logger.Debug("state change", "from", c.current, "to", next)
	}

	if c.current != StateStartScreen {
		screen := cv.ScreenSize()
		cv.DrawText(FPt(screen.X*0.2, 1), c.Session.HudLine(), ColorTable[ColorHud], FPt(1, 1))

		if c.Session.RoundNumber > 1 {
			c.Session.CycleColors(delta)
		}
	}

	c.prev = c.current
	c.current = next
}
