// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular FIFO with head/tail/count indices
// maintained modulo capacity. Not safe for concurrent use.

package ring

import (
	"fmt"
	"iter"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity FIFO ring (single goroutine).
type RingBuffer[T any] struct {
	data  []T
	head  int // oldest element
	tail  int // next write position
	count int
}

// New allocates an empty ring with exactly capacity slots.
// It panics if capacity < 1.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: got %d", api.ErrInvalidCapacity, capacity))
	}
	return &RingBuffer[T]{
		data: make([]T, capacity),
	}
}

// Insert appends item; returns false if full.
func (r *RingBuffer[T]) Insert(item T) bool {
	if r.count == len(r.data) {
		return false
	}
	r.data[r.tail] = item
	r.tail = r.next(r.tail)
	r.count++
	return true
}

// Pop removes and returns the oldest item; ok false if empty.
func (r *RingBuffer[T]) Pop() (item T, ok bool) {
	if r.count == 0 {
		return item, false
	}
	item = r.data[r.head]
	var zero T
	r.data[r.head] = zero
	r.head = r.next(r.head)
	r.count--
	return item, true
}

// Peek returns the oldest item without removing it.
func (r *RingBuffer[T]) Peek() (item T, ok bool) {
	if r.count == 0 {
		return item, false
	}
	return r.data[r.head], true
}

// IsFull reports whether no further insert can succeed.
func (r *RingBuffer[T]) IsFull() bool {
	return r.count == len(r.data)
}

// IsEmpty reports whether the ring holds no items.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.count == 0
}

// Len returns number of items currently in buffer.
func (r *RingBuffer[T]) Len() int {
	return r.count
}

// Cap returns fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// State reports the current occupancy state.
func (r *RingBuffer[T]) State() api.State {
	return api.StateOf[T](r)
}

// Items returns a copy of the contents from oldest to newest.
func (r *RingBuffer[T]) Items() []T {
	if r.count == 0 {
		return nil
	}
	out := make([]T, r.count)
	if r.head+r.count <= len(r.data) {
		copy(out, r.data[r.head:r.head+r.count])
	} else {
		n := copy(out, r.data[r.head:])
		copy(out[n:], r.data[:r.count-n])
	}
	return out
}

// All iterates the contents from oldest to newest without consuming them.
// The ring must not be mutated during iteration.
func (r *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, idx := 0, r.head; i < r.count; i, idx = i+1, r.next(idx) {
			if !yield(r.data[idx]) {
				return
			}
		}
	}
}

// Reset drops all items and returns the ring to its initial state.
func (r *RingBuffer[T]) Reset() {
	clear(r.data)
	r.head, r.tail, r.count = 0, 0, 0
}

func (r *RingBuffer[T]) next(i int) int {
	i++
	if i == len(r.data) {
		return 0
	}
	return i
}
