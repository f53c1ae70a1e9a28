package ringqueue

import "errors"

// ErrBadCapacity is returned when New is asked for a capacity below 1.
var ErrBadCapacity = errors.New("ringqueue: capacity must be at least 1")

// Queue is a FIFO queue over a circular buffer. The zero value is not
// usable; construct with New.
type Queue[T any] struct {
	buf   []T // backing storage, len(buf) == current capacity
	head  int // index of the oldest live element
	count int // number of live elements; disambiguates empty vs. full
}

// New returns an empty Queue with the given initial capacity.
// Returns ErrBadCapacity if capacity < 1.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	return &Queue[T]{buf: make([]T, capacity)}, nil
}

// Enqueue appends v at the logical tail, growing the buffer when full.
// Amortized O(1).
func (q *Queue[T]) Enqueue(v T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++
}

// Dequeue removes and returns the oldest element, or the zero value and
// false if the queue is empty. O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // release the slot for GC
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return v, true
}

// Len returns the number of live elements.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the current buffer capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// grow doubles the buffer, laying live elements out head-first at index 0.
// The copy completes into the new buffer before the old one is dropped, so
// a failed allocation never corrupts existing state.
func (q *Queue[T]) grow() {
	next := make([]T, len(q.buf)*2)
	for i := 0; i < q.count; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
