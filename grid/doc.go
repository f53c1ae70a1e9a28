// Package grid defines the coordinate and maze-board primitives shared by
// the gridpath search engine.
//
// What:
//
//   - Coord is a value-typed (row, col) position, comparable and usable as a
//     map key.
//   - Grid wraps a rectangular [][]bool wall matrix; true marks a wall.
//     The matrix is deep-copied at construction and immutable afterwards.
//   - Parse builds a Grid from the textual '.'/'#' maze format.
//
// Why:
//
//   - Search strategies exchange nothing but Coords with the driver, so the
//     coordinate type must be cheap, comparable, and self-contained.
//   - The driver borrows the Grid read-only for the whole search; deep
//     copying at construction removes any aliasing with caller data.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - InBounds / Wall / Manhattan: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a parsed rune is neither '.' nor '#'.
package grid
