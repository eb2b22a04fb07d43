// File: msgqueue/message.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package msgqueue

import "time"

// Message is a queued payload.
type Message struct {
	// ID is unique per queue. IDs of rejected posts are not reused, so the
	// sequence seen by a consumer may have gaps.
	ID       uint64
	Body     string
	Enqueued time.Time
}

// Stats is a point-in-time view of queue counters.
type Stats struct {
	Name       string `json:"name"`
	Len        int    `json:"len"`
	Cap        int    `json:"cap"`
	State      string `json:"state"`
	Accepted   uint64 `json:"accepted"`
	Rejected   uint64 `json:"rejected"`
	Delivered  uint64 `json:"delivered"`
	Underflows uint64 `json:"underflows"`
}
