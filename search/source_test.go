package search_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// TestNewSource_UnknownKind verifies the strategy set is closed.
func TestNewSource_UnknownKind(t *testing.T) {
	for _, k := range []search.Kind{-1, 3, 42} {
		if _, err := search.NewSource(k, grid.Coord{}); !errors.Is(err, search.ErrUnknownKind) {
			t.Errorf("NewSource(%d): want ErrUnknownKind, got %v", k, err)
		}
	}
}

// TestDepthFirst_LIFO verifies pop order is the reverse of push order and
// that every offer is accepted.
func TestDepthFirst_LIFO(t *testing.T) {
	s, err := search.NewSource(search.DepthFirst, grid.Coord{})
	if err != nil {
		t.Fatalf("NewSource error: %v", err)
	}
	coords := []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	for _, c := range coords {
		if !s.AddCandidate(c, nil) {
			t.Errorf("AddCandidate(%v) = false; depth-first accepts everything", c)
		}
	}
	for i := len(coords) - 1; i >= 0; i-- {
		got, ok := s.NextCandidate()
		if !ok || got != coords[i] {
			t.Fatalf("NextCandidate = (%v, %v); want (%v, true)", got, ok, coords[i])
		}
	}
	if _, ok := s.NextCandidate(); ok {
		t.Error("NextCandidate on empty stack: want none")
	}
}

// TestBreadthFirst_FIFO verifies pop order equals push order.
func TestBreadthFirst_FIFO(t *testing.T) {
	s, err := search.NewSource(search.BreadthFirst, grid.Coord{})
	if err != nil {
		t.Fatalf("NewSource error: %v", err)
	}
	coords := []grid.Coord{{Row: 2, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	for _, c := range coords {
		if !s.AddCandidate(c, nil) {
			t.Errorf("AddCandidate(%v) = false; breadth-first accepts everything", c)
		}
	}
	for _, want := range coords {
		got, ok := s.NextCandidate()
		if !ok || got != want {
			t.Fatalf("NextCandidate = (%v, %v); want (%v, true)", got, ok, want)
		}
	}
	if _, ok := s.NextCandidate(); ok {
		t.Error("NextCandidate on empty queue: want none")
	}
}
