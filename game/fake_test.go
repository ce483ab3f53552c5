package game

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

const testDelta = 1.0 / 60

type fakeInput struct {
	cursor  FPoint
	pressed bool
}

func (in *fakeInput) CursorPosition() FPoint {
	return in.cursor
}

func (in *fakeInput) IsMouseButtonJustPressed(button MouseButton) bool {
	return button == MouseButtonLeft && in.pressed
}

type fillCall struct {
	Rect  FRectangle
	Color color.NRGBA
}

type textCall struct {
	Pos   FPoint
	Text  string
	Scale FPoint
}

type fakeCanvas struct {
	screen FPoint
	fills  []fillCall
	texts  []textCall
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{screen: FPt(256, 240)}
}

func (cv *fakeCanvas) FillRect(rect FRectangle, clr color.Color) {
	cv.fills = append(cv.fills, fillCall{Rect: rect, Color: ColorToNRGBA(clr)})
}

func (cv *fakeCanvas) DrawText(pos FPoint, text string, clr color.Color, scale FPoint) {
	cv.texts = append(cv.texts, textCall{Pos: pos, Text: text, Scale: scale})
}

// 8x8 pixel font
func (cv *fakeCanvas) MeasureText(text string) FPoint {
	return FPt(f64(len(text)*8), 8)
}

func (cv *fakeCanvas) ScreenSize() FPoint {
	return cv.screen
}

func (cv *fakeCanvas) reset() {
	cv.fills = cv.fills[:0]
	cv.texts = cv.texts[:0]
}

func (cv *fakeCanvas) hasText(text string) bool {
	for _, tc := range cv.texts {
		if tc.Text == text {
			return true
		}
	}
	return false
}

type harness struct {
	t  *testing.T
	c  *Controller
	s  *Session
	in *fakeInput
	cv *fakeCanvas

	// state after every tick
	visited []GameState
}

func newHarness(t *testing.T, seed uint64) *harness {
	t.Helper()

	s := NewSession(seed)
	return &harness{
		t:  t,
		c:  NewController(s, log.New(io.Discard)),
		s:  s,
		in: &fakeInput{},
		cv: newFakeCanvas(),
	}
}

func (h *harness) tick() {
	h.cv.reset()
	h.c.Update(testDelta, h.in, h.cv)
	h.in.pressed = false
	h.visited = append(h.visited, h.c.State())
}

func (h *harness) press(pt FPoint) {
	h.in.cursor = pt
	h.in.pressed = true
	h.tick()
}

func (h *harness) pressCard(i int) {
	h.t.Helper()
	if !h.s.IsValidIndex(i) {
		h.t.Fatalf("pressCard: bad index %d of %d", i, len(h.s.Cards))
	}
	h.press(FRectangleCenter(h.s.Cards[i].Rect()))
}

func (h *harness) tickUntil(state GameState, maxTicks int) {
	h.t.Helper()
	for range maxTicks {
		if h.c.State() == state {
			return
		}
		h.tick()
	}
	if h.c.State() != state {
		h.t.Fatalf("state is %v after %d ticks, expected %v", h.c.State(), maxTicks, state)
	}
}

// startGame presses the start button and lets the first round get dealt.
func (h *harness) startGame() {
	h.t.Helper()

	h.tick()
	st := h.c.States[StateStartScreen].(*StartScreenState)
	h.press(FRectangleCenter(st.ButtonRect(h.cv.screen)))

	if h.c.State() != StateRoundStart {
		h.t.Fatalf("expected %v after pressing start, got %v", StateRoundStart, h.c.State())
	}

	h.tick()

	if h.c.State() != StateSelectFirst {
		h.t.Fatalf("expected %v after round start, got %v", StateSelectFirst, h.c.State())
	}
}

// findPair returns two distinct cards, matching or not.
func findPair(s *Session, matching bool) (int, int, bool) {
	for i := range s.Cards {
		for j := i + 1; j < len(s.Cards); j++ {
			if s.Cards[i].Matches(&s.Cards[j]) == matching {
				return i, j, true
			}
		}
	}
	return NoCard, NoCard, false
}

// playTurn selects two cards and runs until the turn is resolved.
func (h *harness) playTurn(matching bool) {
	h.t.Helper()

	i, j, ok := findPair(h.s, matching)
	if !ok {
		h.t.Fatalf("no pair with matching=%v", matching)
	}

	h.pressCard(i)
	h.tickUntil(StateSelectSecond, 200)
	h.pressCard(j)
	h.tickUntil(StateTurnEnd, 200)

	for range 200 {
		if h.c.State() != StateTurnEnd {
			return
		}
		h.tick()
	}
	h.t.Fatalf("turn end did not finish")
}
