// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO ring buffers.
//
// Every ring owns exactly Cap() slots allocated once at construction and
// never grows. Inserting into a full ring returns false and leaves the
// contents untouched; popping from an empty ring returns the zero value and
// false. Neither condition panics.
//
// Variants:
//   - RingBuffer: single goroutine, no synchronization.
//   - Locked: mutex guard around any api.Ring.
//   - SPSC: lock-free, one producer goroutine and one consumer goroutine.
//
// Elements are stored by value. For pointer element types only the pointer
// is copied, so writes through it after Insert are visible to the consumer.
// Popped slots are zeroed, so a ring never keeps consumed elements reachable.
package ring
