// Package search implements single-source path discovery over a
// uniform-cost 4-connected grid with three interchangeable strategies:
// depth-first, breadth-first, and A* with the Manhattan heuristic.
//
// What:
//
//   - Source is the uniform two-method contract each strategy satisfies:
//     offer a candidate coordinate (AddCandidate) and hand back the next one
//     to expand (NextCandidate). NewSource selects the concrete strategy.
//   - Driver owns the per-cell visitation grid, the predecessor map, neighbor
//     expansion, termination detection, and path reconstruction. Each Step
//     call performs exactly one expansion, so an outer loop (for example a
//     renderer's frame tick) controls the cadence.
//
// Why:
//
//   - Step-wise execution lets a UI animate the frontier while the engine
//     stays single-threaded and synchronous.
//   - The strategy set is closed: switching means discarding the Source and
//     building a fresh one, since frontier state does not convert between
//     representations.
//
// Guarantees:
//
//   - Neighbors are offered in the fixed order up, down, left, right, so
//     depth-first and breadth-first traversals are deterministic.
//   - Breadth-first and A* (Manhattan is admissible and consistent here)
//     both return shortest paths; depth-first returns some valid path.
//   - Every search terminates: the uninformed strategies see each cell
//     offered at most once, and A* expands each cell at most once via its
//     closed set, so steps are bounded by the number of reachable cells.
//
// Complexity (R×C grid):
//
//   - Depth/breadth-first: O(R×C) time, O(R×C) memory.
//   - A*: O(R×C log(R×C)) time, O(R×C) memory.
//
// Errors:
//
//   - ErrNilGrid, ErrUnknownKind: construction.
//   - ErrOutOfBounds, ErrBlockedCell, ErrBadState, ErrNotRunning: driver
//     state machine misuse.
//
// Running out of candidates is not an error: the driver reports it as the
// terminal Failed state.
package search
