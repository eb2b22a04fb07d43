// Package msgqueue
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded message queue backed by a fixed-capacity ring.
//
// A Queue owns its ring exclusively. When the ring is full, Offer returns
// false and Post returns an error matching api.ErrCapacityExceeded; the
// queue never overwrites or grows. Next and Take are the consuming side.
//
// Messages are queued by pointer. The queue does not copy them, so a
// producer must not modify a Message after handing it over.
package msgqueue
