package search

import "github.com/katalvlaran/gridpath/grid"

// depthFirst backs the DepthFirst strategy with a slice used as a stack.
// It keeps no visited bookkeeping of its own: duplicate suppression is the
// driver's job via the cell-state grid.
type depthFirst struct {
	stack []grid.Coord
}

func newDepthFirst() *depthFirst {
	return &depthFirst{stack: make([]grid.Coord, 0, frontierCapacity)}
}

// AddCandidate pushes unconditionally; depth-first has no notion of cost,
// so every offer is accepted.
func (s *depthFirst) AddCandidate(c grid.Coord, _ *grid.Coord) bool {
	s.stack = append(s.stack, c)

	return true
}

// NextCandidate pops the most recently pushed coordinate.
func (s *depthFirst) NextCandidate() (grid.Coord, bool) {
	n := len(s.stack)
	if n == 0 {
		return grid.Coord{}, false
	}
	c := s.stack[n-1]
	s.stack = s.stack[:n-1]

	return c, true
}
