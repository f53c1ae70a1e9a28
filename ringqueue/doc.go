// Package ringqueue provides a generic, growable circular-buffer FIFO queue.
//
// What:
//
//   - Queue[T] owns a contiguous buffer plus a head index and an explicit
//     element count. The count field distinguishes "empty" from "exactly one
//     element", so head/tail index equality is never ambiguous.
//   - Enqueue into a full buffer doubles capacity, copying live elements in
//     logical FIFO order starting at the old head; order is preserved and
//     enqueue stays amortized O(1).
//   - Dequeue on an empty queue returns the zero value and false; it is safe
//     to call repeatedly and has no side effects.
//
// Why:
//
//   - The breadth-first search strategy needs a frontier whose dequeue order
//     equals enqueue order, with no per-operation allocation in steady state.
//
// Complexity:
//
//   - Enqueue: amortized O(1) (O(n) on a doubling growth).
//   - Dequeue / Len / Cap: O(1).
//
// Errors:
//
//   - ErrBadCapacity: requested initial capacity below 1.
//
// Growth allocates a fresh buffer before the old one is released; if the
// allocation fails the runtime aborts and the old buffer is never corrupted.
package ringqueue
