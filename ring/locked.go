// File: ring/locked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex guard for sharing a ring between goroutines.

package ring

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Locked[any])(nil)

// Locked serializes every operation on the wrapped ring.
type Locked[T any] struct {
	mu   sync.Mutex
	ring api.Ring[T]
}

// NewLocked wraps r. r must not be used directly afterwards.
func NewLocked[T any](r api.Ring[T]) *Locked[T] {
	return &Locked[T]{ring: r}
}

// Insert appends item; returns false if full.
func (l *Locked[T]) Insert(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Insert(item)
}

// Pop removes the oldest item; ok false if empty.
func (l *Locked[T]) Pop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Pop()
}

// Peek returns the oldest item without removing it.
func (l *Locked[T]) Peek() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Peek()
}

func (l *Locked[T]) IsFull() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.IsFull()
}

func (l *Locked[T]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.IsEmpty()
}

func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Len()
}

// Cap needs no lock; capacity never changes.
func (l *Locked[T]) Cap() int {
	return l.ring.Cap()
}

// Do runs fn with the lock held, for compound check-then-act sequences.
func (l *Locked[T]) Do(fn func(r api.Ring[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.ring)
}
