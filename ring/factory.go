// File: ring/factory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mode-driven construction and generic helpers over api.Ring.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// Of builds the ring variant named by mode. Unlike New it reports an
// invalid capacity as an error instead of panicking.
func Of[T any](mode api.Mode, capacity int) (api.Ring[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", api.ErrInvalidCapacity, capacity)
	}
	switch mode {
	case api.ModeBasic, "":
		return New[T](capacity), nil
	case api.ModeLocked:
		return NewLocked[T](New[T](capacity)), nil
	case api.ModeSPSC:
		return NewSPSC[T](capacity), nil
	default:
		return nil, fmt.Errorf("%w: unknown ring mode %q", api.ErrInvalidArgument, mode)
	}
}

// Drain pops every item from r in FIFO order, calling fn for each.
// It returns the number of items drained.
func Drain[T any](r api.Ring[T], fn func(T)) int {
	n := 0
	for {
		item, ok := r.Pop()
		if !ok {
			return n
		}
		if fn != nil {
			fn(item)
		}
		n++
	}
}
