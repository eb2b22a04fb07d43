// Package api
// Author: momentics@gmail.com
//
// Bounded FIFO ring contract shared by all ring variants.

package api

// Ring is a fixed-capacity FIFO ring buffer contract.
//
// Capacity is fixed at construction. A full ring rejects further inserts
// instead of overwriting or growing; an empty ring reports absence through
// the boolean result of Pop and Peek.
type Ring[T any] interface {
	// Insert appends item at the tail, returns false if full.
	Insert(item T) bool
	// Pop removes the oldest item, returns false if empty.
	Pop() (T, bool)
	// Peek returns the oldest item without removing it.
	Peek() (T, bool)
	// IsFull reports Len() == Cap().
	IsFull() bool
	// IsEmpty reports Len() == 0.
	IsEmpty() bool
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// StateOf derives the occupancy state of any ring.
func StateOf[T any](r Ring[T]) State {
	return StateFor(r.Len(), r.Cap())
}

// StateFor maps an already observed length to a state, so callers holding
// one Len() reading of a concurrent ring get a consistent answer.
func StateFor(length, capacity int) State {
	switch {
	case length <= 0:
		return StateEmpty
	case length >= capacity:
		return StateFull
	default:
		return StatePartial
	}
}
