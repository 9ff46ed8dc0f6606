package core

import "testing"

func TestGateSkipsEarlyCalls(t *testing.T) {
	g := NewGate(40, 0)

	tests := []struct {
		now      int64
		expected bool
	}{
		{10, false},
		{39, false},
		// Exactly one interval is not enough.
		{40, false},
		{41, true},
		{81, false},
		{82, true},
		// A long stall runs once, it does not catch up.
		{500, true},
		{501, false},
		{540, false},
		{541, true},
	}

	for _, tc := range tests {
		if got := g.Due(tc.now); got != tc.expected {
			t.Errorf("Due(%d) = %v, expected %v", tc.now, got, tc.expected)
		}
	}
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	c.Advance(150)
	c.Advance(-20)
	if c.Millis() != 150 {
		t.Errorf("Millis() = %d, expected 150", c.Millis())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Millis()
	b := c.Millis()
	if b < a {
		t.Errorf("clock went backwards: %d then %d", a, b)
	}
}

func TestRandomIntRange(t *testing.T) {
	r := NewRandom(7)
	for range 1000 {
		v := r.IntRange(10, 34)
		if v < 10 || v >= 34 {
			t.Fatalf("IntRange(10, 34) = %d, out of range", v)
		}
	}
	if v := r.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5, 5) = %d, expected 5", v)
	}
}

func TestRandomDeterminism(t *testing.T) {
	a := NewRandom(12345)
	b := NewRandom(12345)
	for i := range 50 {
		if x, y := a.IntRange(0, 32), b.IntRange(0, 32); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
