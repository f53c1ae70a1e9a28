package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D wall matrix.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if walls has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(walls), len(walls[0])
	for r, row := range walls {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]bool, cols)
		copy(cells[r], walls[r])
	}

	return &Grid{rows: rows, cols: cols, walls: cells}, nil
}

// Parse builds a Grid from maze text: one string per row, '.' for an open
// cell and '#' for a wall. Returns ErrEmptyGrid, ErrNonRectangular, or
// ErrBadCell (with the offending position) on malformed input.
// Complexity: O(W×H).
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	walls := make([][]bool, len(lines))
	cols := -1
	for r, line := range lines {
		row := make([]bool, 0, len(line))
		for i, ch := range line {
			switch ch {
			case '#':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: %q at row %d, byte %d", ErrBadCell, ch, r, i)
			}
		}
		if cols == -1 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		walls[r] = row
	}

	return New(walls)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && int(c.Row) < g.rows && c.Col >= 0 && int(c.Col) < g.cols
}

// Wall reports whether the cell at c is a wall.
// Precondition: c must be in bounds (see InBounds).
// Complexity: O(1).
func (g *Grid) Wall(c Coord) bool {
	return g.walls[c.Row][c.Col]
}
