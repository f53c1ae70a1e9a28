package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// neighborOffsets is the fixed expansion order: up, down, left, right.
// This order decides tie-breaking for the depth- and breadth-first
// strategies, making their traversals reproducible.
var neighborOffsets = [4][2]int32{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Driver runs one search at a time over a borrowed read-only Grid. It owns
// the cell-state grid, the predecessor map, and the active Source; all of
// them are rebuilt together on Reset, never shared or converted.
//
// Lifecycle: SelectingStart → SelectingEnd → Running → Solved or Failed.
// Terminal states persist until Reset.
type Driver struct {
	grid  *grid.Grid
	opts  Options
	state State

	start  grid.Coord
	target grid.Coord

	cells [][]CellState
	prev  map[grid.Coord]grid.Coord
	src   Source
	path  []grid.Coord
	steps int
}

// NewDriver returns a Driver in SelectingStart for the given grid,
// applying any number of functional Options.
// Returns ErrNilGrid for a nil grid, ErrUnknownKind for an invalid
// WithStrategy value.
func NewDriver(g *grid.Grid, opts ...Option) (*Driver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validKind(o.Strategy); err != nil {
		return nil, err
	}

	return &Driver{grid: g, opts: o, state: SelectingStart}, nil
}

// SelectStart records the start coordinate and advances to SelectingEnd.
// Returns ErrBadState outside SelectingStart, ErrOutOfBounds or
// ErrBlockedCell for an unusable coordinate.
func (d *Driver) SelectStart(c grid.Coord) error {
	if d.state != SelectingStart {
		return fmt.Errorf("%w: SelectStart in %s", ErrBadState, d.state)
	}
	if err := d.usable(c); err != nil {
		return err
	}
	d.start = c
	d.state = SelectingEnd

	return nil
}

// SelectTarget records the target coordinate and enters Running: the
// cell-state grid is built (CellBlocked mirroring walls), the predecessor
// map cleared, a fresh Source constructed for the configured strategy and
// seeded with the start. A target equal to the start solves immediately
// with a single-cell path.
// Returns ErrBadState outside SelectingEnd, ErrOutOfBounds or
// ErrBlockedCell for an unusable coordinate.
func (d *Driver) SelectTarget(c grid.Coord) error {
	if d.state != SelectingEnd {
		return fmt.Errorf("%w: SelectTarget in %s", ErrBadState, d.state)
	}
	if err := d.usable(c); err != nil {
		return err
	}
	d.target = c

	return d.begin()
}

// begin performs the Running-entry routine from SelectTarget.
func (d *Driver) begin() error {
	rows, cols := d.grid.Rows(), d.grid.Cols()
	d.cells = make([][]CellState, rows)
	for r := 0; r < rows; r++ {
		d.cells[r] = make([]CellState, cols)
		for col := 0; col < cols; col++ {
			if d.grid.Wall(grid.Coord{Row: int32(r), Col: int32(col)}) {
				d.cells[r][col] = CellBlocked
			}
		}
	}
	d.prev = make(map[grid.Coord]grid.Coord, rows*cols)
	d.path = nil
	d.steps = 0

	if d.start == d.target {
		// Nothing to search: a single-cell route.
		d.path = []grid.Coord{d.start}
		d.cells[d.start.Row][d.start.Col] = CellPath
		d.state = Solved

		return nil
	}

	src, err := NewSource(d.opts.Strategy, d.target)
	if err != nil {
		return err
	}
	d.src = src
	d.src.AddCandidate(d.start, nil)
	d.cells[d.start.Row][d.start.Col] = CellCandidate
	d.state = Running

	return nil
}

// Step performs one unit of search progress: dequeue a candidate, check
// termination, otherwise visit it and offer its unexpanded orthogonal
// neighbors. Each accepted offer records (or re-points, for AStar) the
// neighbor's predecessor link.
//
// Returns the driver state after the step. On a terminal state Step is a
// no-op; before Running it returns ErrNotRunning.
func (d *Driver) Step() (State, error) {
	switch d.state {
	case Solved, Failed:
		return d.state, nil
	case Running:
		// fall through to one expansion
	default:
		return d.state, fmt.Errorf("%w: Step in %s", ErrNotRunning, d.state)
	}
	d.steps++

	c, ok := d.src.NextCandidate()
	if !ok {
		d.state = Failed

		return d.state, nil
	}
	if c == d.target {
		d.rebuildPath()
		d.state = Solved

		return d.state, nil
	}

	d.cells[c.Row][c.Col] = CellVisited
	d.opts.OnVisit(c)

	// AStar arbitrates repeated offers by cost, so a cell still awaiting
	// expansion is offered again and can be re-parented onto a cheaper
	// predecessor. The uninformed strategies accept unconditionally and
	// rely on the single-offer discipline instead.
	reoffer := d.opts.Strategy == AStar
	for _, off := range neighborOffsets {
		n := grid.Coord{Row: c.Row + off[0], Col: c.Col + off[1]}
		if !d.grid.InBounds(n) {
			continue
		}
		switch d.cells[n.Row][n.Col] {
		case CellEmpty:
			d.cells[n.Row][n.Col] = CellCandidate
		case CellCandidate:
			if !reoffer {
				continue
			}
		default:
			continue
		}
		d.opts.OnCandidate(n, c)
		from := c
		if d.src.AddCandidate(n, &from) {
			d.prev[n] = c
		}
	}

	return d.state, nil
}

// Run steps until a terminal state and returns it. Each run is finite:
// every Step expands a cell at most once (single offers for the uninformed
// strategies, the closed set for AStar), so the step count is bounded by
// the number of reachable cells.
func (d *Driver) Run() (State, error) {
	for d.state == Running {
		if _, err := d.Step(); err != nil {
			return d.state, err
		}
	}
	if d.state != Solved && d.state != Failed {
		return d.state, fmt.Errorf("%w: Run in %s", ErrNotRunning, d.state)
	}

	return d.state, nil
}

// Reset tears the search down and returns to SelectingStart with the given
// strategy for the next run. All per-run state (cell states, predecessors,
// Source, path) is discarded, never reused.
// Returns ErrUnknownKind for an invalid kind.
func (d *Driver) Reset(kind Kind) error {
	if err := validKind(kind); err != nil {
		return err
	}
	d.opts.Strategy = kind
	d.state = SelectingStart
	d.cells = nil
	d.prev = nil
	d.src = nil
	d.path = nil
	d.steps = 0

	return nil
}

// rebuildPath walks the predecessor map backward from the target, reverses
// the route into start→target order, and overlays CellPath on every cell
// on it.
func (d *Driver) rebuildPath() {
	path := []grid.Coord{d.target}
	for cur := d.target; cur != d.start; {
		cur = d.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, c := range path {
		d.cells[c.Row][c.Col] = CellPath
	}
	d.path = path
}

// usable verifies c is in bounds and not a wall.
func (d *Driver) usable(c grid.Coord) error {
	if !d.grid.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if d.grid.Wall(c) {
		return fmt.Errorf("%w: %v", ErrBlockedCell, c)
	}

	return nil
}

// validKind rejects kinds outside the closed strategy set.
func validKind(k Kind) error {
	switch k {
	case BreadthFirst, DepthFirst, AStar:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Start returns the selected start coordinate (zero before SelectStart).
func (d *Driver) Start() grid.Coord { return d.start }

// Target returns the selected target coordinate (zero before SelectTarget).
func (d *Driver) Target() grid.Coord { return d.target }

// Steps returns the number of expansions performed in the current run.
func (d *Driver) Steps() int { return d.steps }

// Cell returns the visitation state of c. Outside Running/Solved/Failed, or
// out of bounds, it reports CellEmpty. Read-only: intended for renderers.
func (d *Driver) Cell(c grid.Coord) CellState {
	if d.cells == nil || !d.grid.InBounds(c) {
		return CellEmpty
	}

	return d.cells[c.Row][c.Col]
}

// Path returns the reconstructed start→target route, or nil unless Solved.
// The returned slice is a copy; callers may keep it across Reset.
func (d *Driver) Path() []grid.Coord {
	if d.state != Solved {
		return nil
	}
	out := make([]grid.Coord, len(d.path))
	copy(out, d.path)

	return out
}
