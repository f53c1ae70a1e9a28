package minheap

import "errors"

// ErrNilLess is returned when New is called without a comparison function.
var ErrNilLess = errors.New("minheap: comparison function must be non-nil")

// Less reports whether a should be extracted before b.
type Less[T any] func(a, b T) bool

// Heap is a binary min-heap over a dynamic array. The zero value is not
// usable; construct with New.
type Heap[T any] struct {
	items []T
	less  Less[T]
}

// New returns an empty Heap ordered by less.
// Returns ErrNilLess if less is nil.
func New[T any](less Less[T]) (*Heap[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	return &Heap[T]{less: less}, nil
}

// Insert adds v while maintaining the heap property. O(log n).
func (h *Heap[T]) Insert(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns the minimum item, or the zero value and
// false if the heap is empty. O(log n).
func (h *Heap[T]) ExtractMin() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	root := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = zero // release the slot for GC
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}

	return root, true
}

// PeekMin returns the minimum item without removing it, or the zero value
// and false if the heap is empty. O(1).
func (h *Heap[T]) PeekMin() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// siftUp restores the heap property from index i towards the root.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

// siftDown restores the heap property from index i towards the leaves.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(h.items[r], h.items[l]) {
			best = r
		}
		if !h.less(h.items[best], h.items[i]) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
