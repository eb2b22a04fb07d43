// File: msgqueue/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package msgqueue

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ring/control"
)

// Option customizes a Queue.
type Option func(*Queue)

// WithLogger sets the base logger. The queue adds its own name and level.
func WithLogger(l zerolog.Logger) Option {
	return func(q *Queue) { q.baseLogger = l }
}

// WithMetrics publishes queue counters to mr after every mutation.
func WithMetrics(mr *control.MetricsRegistry) Option {
	return func(q *Queue) { q.metrics = mr }
}

// WithProbes registers a debug probe named after the queue.
func WithProbes(dp *control.DebugProbes) Option {
	return func(q *Queue) { q.probes = dp }
}

// WithClock overrides the time source used to stamp messages.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}
