package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/ringqueue"
)

// frontierCapacity is the initial capacity of a strategy's frontier
// container; it grows on demand.
const frontierCapacity = 16

// breadthFirst backs the BreadthFirst strategy with a ring-buffer FIFO.
// Like depthFirst it accepts every offer and leaves duplicate suppression
// to the driver's cell-state grid.
type breadthFirst struct {
	queue *ringqueue.Queue[grid.Coord]
}

func newBreadthFirst() *breadthFirst {
	q, err := ringqueue.New[grid.Coord](frontierCapacity)
	if err != nil {
		// frontierCapacity is a positive constant; New cannot fail on it.
		panic(err)
	}

	return &breadthFirst{queue: q}
}

// AddCandidate enqueues unconditionally; every offer is accepted.
func (s *breadthFirst) AddCandidate(c grid.Coord, _ *grid.Coord) bool {
	s.queue.Enqueue(c)

	return true
}

// NextCandidate dequeues the oldest offered coordinate.
func (s *breadthFirst) NextCandidate() (grid.Coord, bool) {
	return s.queue.Dequeue()
}
