// Package search defines the strategy selector, driver states, cell states,
// sentinel errors, and functional options for the search engine.
package search

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search construction and driver usage.
var (
	// ErrNilGrid is returned if a nil *grid.Grid is passed to NewDriver.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownKind is returned for a Kind outside the closed strategy set.
	ErrUnknownKind = errors.New("search: unknown strategy kind")

	// ErrOutOfBounds is returned when a selected coordinate lies outside
	// the grid.
	ErrOutOfBounds = errors.New("search: coordinate out of bounds")

	// ErrBlockedCell is returned when a selected coordinate is a wall.
	ErrBlockedCell = errors.New("search: coordinate is a wall")

	// ErrBadState is returned when a driver method is called out of the
	// SelectingStart → SelectingEnd → Running order.
	ErrBadState = errors.New("search: operation not valid in current state")

	// ErrNotRunning is returned by Step before a start and target have been
	// selected.
	ErrNotRunning = errors.New("search: search has not been started")
)

// Kind selects one of the three search strategies. The set is closed:
// NewSource rejects anything else with ErrUnknownKind.
type Kind int

const (
	// BreadthFirst expands candidates in FIFO order; shortest path on
	// unit-cost grids.
	BreadthFirst Kind = iota
	// DepthFirst expands candidates in LIFO order; finds some valid path.
	DepthFirst
	// AStar expands candidates by ascending fScore (gScore + Manhattan);
	// shortest path, usually visiting far fewer cells than BreadthFirst.
	AStar
)

// String returns the strategy name.
func (k Kind) String() string {
	switch k {
	case BreadthFirst:
		return "BreadthFirst"
	case DepthFirst:
		return "DepthFirst"
	case AStar:
		return "AStar"
	default:
		return "Unknown"
	}
}

// State is the driver's lifecycle state. Solved and Failed are terminal
// until Reset.
type State int

const (
	// SelectingStart awaits SelectStart.
	SelectingStart State = iota
	// SelectingEnd awaits SelectTarget.
	SelectingEnd
	// Running accepts Step calls.
	Running
	// Solved is terminal: the target was reached and Path is populated.
	Solved
	// Failed is terminal: every reachable cell was exhausted.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case SelectingStart:
		return "SelectingStart"
	case SelectingEnd:
		return "SelectingEnd"
	case Running:
		return "Running"
	case Solved:
		return "Solved"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// CellState is the driver-owned visitation state of one grid cell.
// CellBlocked mirrors the wall layout and is set once when Running is
// entered; the other states transition forward only, except the final
// CellPath overlay applied to cells on the reconstructed route.
type CellState uint8

const (
	// CellEmpty has not been touched by the search.
	CellEmpty CellState = iota
	// CellCandidate has been offered to the strategy and awaits expansion.
	CellCandidate
	// CellVisited has been expanded.
	CellVisited
	// CellBlocked is a wall.
	CellBlocked
	// CellPath lies on the reconstructed start→target route.
	CellPath
)

// Option configures driver behavior via functional arguments.
type Option func(*Options)

// Options holds driver parameters and event hooks.
type Options struct {
	// Strategy chooses the candidate-management algorithm for the next run.
	Strategy Kind

	// OnVisit is called when a candidate is dequeued and marked visited.
	OnVisit func(c grid.Coord)

	// OnCandidate is called when a neighbor is offered to the strategy,
	// with the cell it was reached from.
	OnCandidate func(c, from grid.Coord)
}

// DefaultOptions returns Options with BreadthFirst (known-optimal on
// unit-cost grids) and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Strategy:    BreadthFirst,
		OnVisit:     func(grid.Coord) {},
		OnCandidate: func(_, _ grid.Coord) {},
	}
}

// WithStrategy selects the search strategy.
func WithStrategy(k Kind) Option {
	return func(o *Options) {
		o.Strategy = k
	}
}

// WithOnVisit registers a callback to run when a cell is visited.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnCandidate registers a callback to run when a cell is offered as a
// candidate.
func WithOnCandidate(fn func(c, from grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}
