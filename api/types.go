// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

// State enumerates ring occupancy.
type State int

const (
	StateEmpty State = iota
	StatePartial
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

// Mode selects the ring variant backing a queue.
type Mode string

const (
	// ModeBasic is the unsynchronized single-threaded ring.
	ModeBasic Mode = "basic"
	// ModeLocked guards a basic ring with a mutex.
	ModeLocked Mode = "locked"
	// ModeSPSC is the lock-free single-producer/single-consumer ring.
	ModeSPSC Mode = "spsc"
)

// Valid reports whether m names a known ring variant.
func (m Mode) Valid() bool {
	switch m {
	case ModeBasic, ModeLocked, ModeSPSC:
		return true
	}
	return false
}
