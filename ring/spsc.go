// File: ring/spsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSC is a bounded ring with atomic head/tail, padded to prevent false
// sharing between the producer and consumer cores.

package ring

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*SPSC[any])(nil)

// SPSC is a lock-free ring (single-producer, single-consumer safe).
//
// head and tail are monotonically increasing counters; the slot index is the
// counter modulo capacity, so any capacity >= 1 is accepted.
// Insert must only be called from the producer goroutine, Pop and Peek only
// from the consumer goroutine. Len, Cap, IsFull and IsEmpty may be called
// from anywhere and return a point-in-time view.
type SPSC[T any] struct {
	data []T
	size uint64
	_    cpu.CacheLinePad
	head atomic.Uint64
	_    cpu.CacheLinePad
	tail atomic.Uint64
	_    cpu.CacheLinePad
}

// NewSPSC allocates an SPSC ring with exactly capacity slots.
// It panics if capacity < 1.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: got %d", api.ErrInvalidCapacity, capacity))
	}
	return &SPSC[T]{
		data: make([]T, capacity),
		size: uint64(capacity),
	}
}

// Insert adds item; returns false if full. Producer only.
func (r *SPSC[T]) Insert(item T) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() >= r.size {
		return false
	}
	r.data[tail%r.size] = item
	r.tail.Store(tail + 1)
	return true
}

// Pop removes and returns the oldest item; ok false if empty. Consumer only.
func (r *SPSC[T]) Pop() (item T, ok bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return item, false
	}
	idx := head % r.size
	item = r.data[idx]
	var zero T
	r.data[idx] = zero
	r.head.Store(head + 1)
	return item, true
}

// Peek returns the oldest item without removing it. Consumer only.
func (r *SPSC[T]) Peek() (item T, ok bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return item, false
	}
	return r.data[head%r.size], true
}

// IsFull reports whether the producer would be rejected right now.
func (r *SPSC[T]) IsFull() bool {
	return r.Len() == r.Cap()
}

// IsEmpty reports whether the consumer would find nothing right now.
func (r *SPSC[T]) IsEmpty() bool {
	return r.Len() == 0
}

// Len returns number of items currently in buffer.
func (r *SPSC[T]) Len() int {
	// head first: tail is never behind a head loaded earlier.
	head := r.head.Load()
	tail := r.tail.Load()
	n := tail - head
	if n > r.size {
		n = r.size
	}
	return int(n)
}

// Cap returns fixed buffer capacity.
func (r *SPSC[T]) Cap() int {
	return int(r.size)
}
