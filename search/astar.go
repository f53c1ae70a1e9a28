package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/minheap"
)

// scored pairs a coordinate with its fScore for heap ordering.
type scored struct {
	coord grid.Coord
	f     int
}

// aStar backs the AStar strategy. It keeps the classic bookkeeping trio —
// open-set membership, closed set, best-known gScore — next to a min-heap
// of (coord, fScore) entries under a lazy-decrease-key discipline: a cheaper
// rediscovery pushes a duplicate entry, and stale ones are skipped on
// extraction.
//
// Invariant: a coordinate in closed is never re-admitted to open.
type aStar struct {
	target grid.Coord
	open   map[grid.Coord]bool
	closed map[grid.Coord]bool
	gScore map[grid.Coord]int
	heap   *minheap.Heap[scored]
}

func newAStar(target grid.Coord) *aStar {
	h, err := minheap.New(func(a, b scored) bool { return a.f < b.f })
	if err != nil {
		// the comparator above is never nil; New cannot fail on it.
		panic(err)
	}

	return &aStar{
		target: target,
		open:   make(map[grid.Coord]bool),
		closed: make(map[grid.Coord]bool),
		gScore: make(map[grid.Coord]int),
		heap:   h,
	}
}

// AddCandidate offers c reached from from. The seed call (nil from) records
// a plain zero cost for the start coordinate; every later step costs 1.
// Accepts only when the tentative cost improves on the best recorded gScore,
// which is the caller's cue to (re)point c's predecessor at from.
func (s *aStar) AddCandidate(c grid.Coord, from *grid.Coord) bool {
	if s.closed[c] {
		return false
	}
	tentative := 0
	if from != nil {
		tentative = s.gScore[*from] + 1
	}
	if !s.open[c] {
		s.open[c] = true
	}
	if best, seen := s.gScore[c]; seen && tentative >= best {
		return false
	}
	s.gScore[c] = tentative
	s.heap.Insert(scored{coord: c, f: tentative + c.Manhattan(s.target)})

	return true
}

// NextCandidate extracts heap minima until one is still open, moves it to
// the closed set, and returns it. Entries whose coordinate already left the
// open set are stale duplicates from the lazy-decrease-key discipline and
// are discarded. Returns false once the heap is exhausted.
func (s *aStar) NextCandidate() (grid.Coord, bool) {
	for {
		item, ok := s.heap.ExtractMin()
		if !ok {
			return grid.Coord{}, false
		}
		if !s.open[item.coord] {
			continue // stale entry for an already-closed coordinate
		}
		delete(s.open, item.coord)
		s.closed[item.coord] = true

		return item.coord, true
	}
}
