// Package minheap provides a generic array-backed binary min-heap ordered
// by an injected comparison function.
//
// What:
//
//   - Heap[T] keeps its items in a slice satisfying the heap property
//     relative to the Less function supplied at construction: no item
//     compares less than its parent.
//   - Insert appends then sifts up; ExtractMin swaps the root with the last
//     item, shrinks, sifts down; PeekMin inspects without mutating.
//
// Why:
//
//   - The A* strategy orders its open candidates by fScore and relies on a
//     lazy-decrease-key discipline: duplicates are inserted freely and stale
//     entries are discarded by the caller's freshness check on extraction.
//     The heap therefore performs no duplicate suppression of its own.
//
// Complexity:
//
//   - Insert / ExtractMin: O(log n).
//   - PeekMin / Len: O(1).
//
// Errors:
//
//   - ErrNilLess: construction without a comparison function.
//
// Ties under Less break arbitrarily; equal-priority items are extracted in
// an implementation-defined order.
package minheap
