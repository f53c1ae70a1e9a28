package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// mustAStar builds an AStar source towards target or fails the test.
func mustAStar(t *testing.T, target grid.Coord) search.Source {
	t.Helper()
	s, err := search.NewSource(search.AStar, target)
	if err != nil {
		t.Fatalf("NewSource(AStar) error: %v", err)
	}

	return s
}

// TestAStar_SeedAndClose verifies the seed call is accepted with zero cost
// and that a closed coordinate is rejected forever after.
func TestAStar_SeedAndClose(t *testing.T) {
	start := grid.Coord{Row: 0, Col: 0}
	s := mustAStar(t, grid.Coord{Row: 2, Col: 2})
	if !s.AddCandidate(start, nil) {
		t.Fatal("seed AddCandidate = false; want accepted")
	}
	got, ok := s.NextCandidate()
	if !ok || got != start {
		t.Fatalf("NextCandidate = (%v, %v); want (%v, true)", got, ok, start)
	}
	// start is now closed: any re-offer must be rejected.
	from := grid.Coord{Row: 0, Col: 1}
	if s.AddCandidate(start, &from) {
		t.Error("AddCandidate on closed coordinate = true; want rejected")
	}
}

// TestAStar_RejectNotImproved verifies an equal-cost re-offer is rejected.
func TestAStar_RejectNotImproved(t *testing.T) {
	start := grid.Coord{Row: 0, Col: 0}
	s := mustAStar(t, grid.Coord{Row: 0, Col: 3})
	s.AddCandidate(start, nil)
	s.NextCandidate()

	next := grid.Coord{Row: 0, Col: 1}
	if !s.AddCandidate(next, &start) {
		t.Fatalf("first offer of %v = false; want accepted", next)
	}
	if s.AddCandidate(next, &start) {
		t.Error("equal-cost re-offer = true; want rejected")
	}
}

// TestAStar_ReparentAndStaleSkip verifies a cheaper rediscovery is accepted
// and that the resulting stale heap entry is skipped on extraction.
func TestAStar_ReparentAndStaleSkip(t *testing.T) {
	start := grid.Coord{Row: 0, Col: 0}
	target := grid.Coord{Row: 0, Col: 3}
	s := mustAStar(t, target)
	s.AddCandidate(start, nil)
	s.NextCandidate() // close start, gScore 0

	a := grid.Coord{Row: 0, Col: 1} // gScore 1 via start
	b := grid.Coord{Row: 0, Col: 2}
	if !s.AddCandidate(a, &start) {
		t.Fatal("offer of a = false; want accepted")
	}
	// First offer of b pretends the path runs through a: cost 2, f 3.
	if !s.AddCandidate(b, &a) {
		t.Fatal("offer of b via a = false; want accepted")
	}
	// Cheaper rediscovery straight from start: cost 1, f 2. Must re-parent.
	if !s.AddCandidate(b, &start) {
		t.Fatal("cheaper re-offer of b = false; want accepted")
	}
	// b (f=2) now outranks a (f=3); the stale b entry (f=3) must be
	// silently discarded afterwards, leaving a and then exhaustion.
	got, ok := s.NextCandidate()
	if !ok || got != b {
		t.Fatalf("NextCandidate = (%v, %v); want (%v, true)", got, ok, b)
	}
	got, ok = s.NextCandidate()
	if !ok || got != a {
		t.Fatalf("NextCandidate after stale skip = (%v, %v); want (%v, true)", got, ok, a)
	}
	if c, ok := s.NextCandidate(); ok {
		t.Errorf("NextCandidate on exhausted source = (%v, true); want none", c)
	}
}
