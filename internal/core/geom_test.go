package core

import "testing"

func TestRectContains(t *testing.T) {
	grid := NewRect(0, 0, 32, 16)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"last cell", Point{31, 15}, true},
		{"right edge (exclusive)", Point{32, 5}, false},
		{"bottom edge (exclusive)", Point{5, 16}, false},
		{"negative x", Point{-1, 5}, false},
		{"negative y", Point{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{X: 10, Y: 10}.Add(Point{X: 0, Y: 1})
	if got != (Point{X: 10, Y: 11}) {
		t.Errorf("Add() = %v, expected (10, 11)", got)
	}
}
