// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridpath.
package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a parsed character outside {'.', '#'}.
	ErrBadCell = errors.New("grid: cell must be '.' (open) or '#' (wall)")
)

// Coord is a grid position. It is a pure value: structurally compared,
// hashable, and the only thing that flows between the search driver and a
// strategy.
type Coord struct {
	Row, Col int32
}

// Manhattan returns the Manhattan distance |Δrow| + |Δcol| between c and o.
// Admissible and consistent for uniform-cost 4-connected movement.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	dr := int(c.Row - o.Row)
	if dr < 0 {
		dr = -dr
	}
	dc := int(c.Col - o.Col)
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Grid is an immutable rectangular wall matrix. walls[r][c] == true means
// the cell at row r, column c is a wall. Built once via New or Parse and
// read-only for the duration of any search.
type Grid struct {
	rows, cols int
	walls      [][]bool
}
