package game

// Timer accumulates simulation time.
//
// Animations in this package are driven by Timer instead of wall clock,
// so frame rate changes smoothness but not how long an animation takes.
type Timer struct {
	Duration float64
	Current  float64

	// Rate scales delta on every TickUp.
	Rate float64
}

func NewTimer(duration, rate float64) Timer {
	return Timer{
		Duration: duration,
		Rate:     rate,
	}
}

func (t *Timer) Reset() {
	t.Current = 0
}

func (t *Timer) TickUp(delta float64) {
	t.Current += delta * t.Rate
}

// Done reports whether timer went past its duration.
func (t *Timer) Done() bool {
	return t.Current > t.Duration
}

// PastHalf reports whether timer went past the half of its duration.
func (t *Timer) PastHalf() bool {
	return t.Current > t.Duration*0.5
}

func (t *Timer) Normalize() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return Clamp(t.Current/t.Duration, 0, 1)
}

func (t *Timer) NormalizeUnclamped() float64 {
	return t.Current / t.Duration
}

// Eased returns Ease(Normalize()).
func (t *Timer) Eased() float64 {
	return Ease(t.Normalize())
}
