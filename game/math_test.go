package game

import (
	"math"
	"testing"
)

func TestEaseBoundaries(t *testing.T) {
	if got := Ease(0); got != 0 {
		t.Errorf("Ease(0) = %v, expected 0", got)
	}
	if got := Ease(1); got != 1 {
		t.Errorf("Ease(1) = %v, expected 1", got)
	}
	if got := Ease(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Ease(0.5) = %v, expected 0.5", got)
	}
}

func TestEaseIsMonotonic(t *testing.T) {
	prev := Ease(0)
	for i := 1; i <= 100; i++ {
		v := Ease(f64(i) / 100)
		if v < prev {
			t.Fatalf("Ease decreased at %v: %v < %v", f64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		t        float64
		expected float64
	}{
		{0, 1},
		{0.5, 0},
		{1, 1},
	}

	for _, tc := range tests {
		if got := Fold(tc.t); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Fold(%v) = %v, expected %v", tc.t, got, tc.expected)
		}
	}
}

func TestLerpEndpointsAreExact(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"small", 0.1, 0.7},
		{"large", 123.456, 987.654},
		{"negative", -33.3, 17.17},
		{"reversed", 200.2, 3.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.a, tc.b, Ease(0)); got != tc.a {
				t.Errorf("Lerp(t=0) = %v, expected %v", got, tc.a)
			}
			if got := Lerp(tc.a, tc.b, Ease(1)); got != tc.b {
				t.Errorf("Lerp(t=1) = %v, expected %v", got, tc.b)
			}
		})
	}
}

func TestPointInRect(t *testing.T) {
	r := FRectPosSize(FPt(10, 10), FPt(20, 15))

	tests := []struct {
		name     string
		pt       FPoint
		expected bool
	}{
		{"inside", FPt(15, 15), true},
		{"top left corner", FPt(10, 10), true},
		{"right edge (exclusive)", FPt(30, 15), false},
		{"bottom edge (exclusive)", FPt(15, 25), false},
		{"left of rect", FPt(9.99, 15), false},
		{"above rect", FPt(15, 9.99), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pt.In(r); got != tc.expected {
				t.Errorf("%v.In(%v) = %v, expected %v", tc.pt, r, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %v", got)
	}
	if got := Clamp(-1.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-1.5, 0, 1) = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25, 0, 1) = %v", got)
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer(1, 1.2)

	for range 24 {
		timer.TickUp(1.0 / 60)
	}
	if timer.PastHalf() {
		t.Errorf("timer past half after 0.48 units")
	}
	timer.TickUp(1.0 / 60)
	timer.TickUp(1.0 / 60)
	if !timer.PastHalf() {
		t.Errorf("timer not past half after 0.52 units")
	}

	for range 100 {
		timer.TickUp(1.0 / 60)
	}
	if !timer.Done() {
		t.Errorf("timer not done")
	}
	if got := timer.Normalize(); got != 1 {
		t.Errorf("Normalize() = %v, expected clamped 1", got)
	}
	if got := timer.Eased(); got != 1 {
		t.Errorf("Eased() = %v, expected 1", got)
	}

	timer.Reset()
	if timer.Current != 0 {
		t.Errorf("Reset did not zero timer")
	}
}
