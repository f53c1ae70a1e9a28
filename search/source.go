package search

import "github.com/katalvlaran/gridpath/grid"

// Source is the uniform contract of a search strategy. The driver offers
// coordinates and asks for the next one to expand; which one comes back is
// entirely the strategy's business.
//
// A nil from marks the seed call for the start coordinate. Only Coords flow
// across this boundary: a Source never sees the grid itself.
type Source interface {
	// AddCandidate offers c, reached from from (nil for the seed).
	// It reports whether the strategy accepted c as a new or improved
	// path — the caller's signal to record a predecessor link.
	AddCandidate(c grid.Coord, from *grid.Coord) bool

	// NextCandidate removes and returns the next coordinate to expand,
	// or false once the strategy is exhausted.
	NextCandidate() (grid.Coord, bool)
}

// NewSource constructs a fresh strategy of the given Kind. For AStar the
// target anchors the Manhattan heuristic; the other strategies ignore it.
// Returns ErrUnknownKind for a Kind outside the closed set.
//
// A Source carries no state worth converting: switching strategies
// mid-search means discarding the old Source and seeding a new one.
func NewSource(kind Kind, target grid.Coord) (Source, error) {
	switch kind {
	case DepthFirst:
		return newDepthFirst(), nil
	case BreadthFirst:
		return newBreadthFirst(), nil
	case AStar:
		return newAStar(target), nil
	default:
		return nil, ErrUnknownKind
	}
}
