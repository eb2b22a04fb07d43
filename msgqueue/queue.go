// File: msgqueue/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue couples a ring of *Message with counters, logging and metrics.

package msgqueue

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/ring"
)

// Queue is a bounded FIFO of messages.
//
// Concurrency follows the configured mode: basic allows one goroutine,
// spsc one producer plus one consumer, locked any number of goroutines.
type Queue struct {
	name string
	ring api.Ring[*Message]

	baseLogger zerolog.Logger
	logger     atomic.Pointer[zerolog.Logger]
	metrics    *control.MetricsRegistry
	probes     *control.DebugProbes
	now        func() time.Time

	nextID     atomic.Uint64
	accepted   atomic.Uint64
	rejected   atomic.Uint64
	delivered  atomic.Uint64
	underflows atomic.Uint64
}

// New builds a queue from cfg.
func New(cfg Config, opts ...Option) (*Queue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating queue: %w", err)
	}
	r, err := ring.Of[*Message](cfg.Mode, cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("creating queue ring: %w", err)
	}

	q := &Queue{
		name:       cfg.Name,
		ring:       r,
		baseLogger: zerolog.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.setLevel(cfg.Level())

	if q.probes != nil {
		q.probes.RegisterProbe(q.name, func() any { return q.Stats() })
	}
	q.publish()

	q.log().Debug().
		Int("capacity", cfg.Capacity).
		Str("mode", string(cfg.Mode)).
		Msg("queue created")
	return q, nil
}

// Name returns the queue name.
func (q *Queue) Name() string { return q.name }

// Offer inserts msg, returning false if the queue is full or msg is nil.
// A rejected offer leaves the queue unchanged.
func (q *Queue) Offer(msg *Message) bool {
	if msg == nil {
		return false
	}
	if !q.ring.Insert(msg) {
		n := q.rejected.Add(1)
		q.log().Debug().
			Uint64("id", msg.ID).
			Uint64("rejected_total", n).
			Msg("queue full, message rejected")
		q.publish()
		return false
	}
	q.accepted.Add(1)
	if q.ring.IsFull() {
		q.log().Warn().Int("capacity", q.ring.Cap()).Msg("queue reached capacity")
	}
	q.publish()
	return true
}

// Post wraps body in a new Message and inserts it.
// When the queue is full the error matches api.ErrCapacityExceeded.
func (q *Queue) Post(body string) (*Message, error) {
	msg := &Message{
		ID:       q.nextID.Add(1),
		Body:     body,
		Enqueued: q.now(),
	}
	if !q.Offer(msg) {
		return nil, api.NewError(api.ErrCodeCapacityExceeded, "queue is full").
			WithContext("queue", q.name).
			WithContext("capacity", q.ring.Cap()).
			Wrap(api.ErrCapacityExceeded)
	}
	return msg, nil
}

// Next removes the oldest message; ok is false when the queue is empty.
func (q *Queue) Next() (*Message, bool) {
	msg, ok := q.ring.Pop()
	if !ok {
		q.underflows.Add(1)
		q.publish()
		return nil, false
	}
	q.delivered.Add(1)
	q.publish()
	return msg, true
}

// Take is Next with an error matching api.ErrUnderflow when empty.
func (q *Queue) Take() (*Message, error) {
	msg, ok := q.Next()
	if !ok {
		return nil, api.NewError(api.ErrCodeUnderflow, "queue is empty").
			WithContext("queue", q.name).
			Wrap(api.ErrUnderflow)
	}
	return msg, nil
}

// Peek returns the oldest message without removing it.
func (q *Queue) Peek() (*Message, bool) {
	return q.ring.Peek()
}

// Drain delivers every queued message to fn in FIFO order and returns the count.
func (q *Queue) Drain(fn func(*Message)) int {
	n := ring.Drain(q.ring, fn)
	if n > 0 {
		q.delivered.Add(uint64(n))
		q.log().Debug().Int("count", n).Msg("queue drained")
	}
	q.publish()
	return n
}

func (q *Queue) Len() int { return q.ring.Len() }

func (q *Queue) Cap() int { return q.ring.Cap() }

func (q *Queue) IsFull() bool { return q.ring.IsFull() }

func (q *Queue) IsEmpty() bool { return q.ring.IsEmpty() }

func (q *Queue) State() api.State { return api.StateOf(q.ring) }

// Stats returns current counters. Len and State come from one reading.
func (q *Queue) Stats() Stats {
	n, capacity := q.ring.Len(), q.ring.Cap()
	return Stats{
		Name:       q.name,
		Len:        n,
		Cap:        capacity,
		State:      api.StateFor(n, capacity).String(),
		Accepted:   q.accepted.Load(),
		Rejected:   q.rejected.Load(),
		Delivered:  q.delivered.Load(),
		Underflows: q.underflows.Load(),
	}
}

// Watch applies config changes from store. Only the log level can change
// at runtime; capacity changes are refused because rings never resize.
func (q *Queue) Watch(store *control.ConfigStore) {
	store.OnReload(func(snapshot map[string]any, changed []string) {
		for _, key := range changed {
			switch key {
			case KeyLogLevel:
				s, _ := snapshot[key].(string)
				lvl, err := parseLevel(s)
				if err != nil {
					q.log().Warn().Err(err).Msg("ignoring log level change")
					continue
				}
				q.setLevel(lvl)
				q.log().Info().Str("level", lvl.String()).Msg("log level reloaded")
			case KeyCapacity:
				q.log().Warn().
					Err(api.ErrNotSupported).
					Interface("requested", snapshot[key]).
					Int("capacity", q.ring.Cap()).
					Msg("ignoring capacity change, queue cannot resize")
			}
		}
	})
}

func (q *Queue) log() *zerolog.Logger {
	return q.logger.Load()
}

func (q *Queue) setLevel(lvl zerolog.Level) {
	l := q.baseLogger.With().Str("queue", q.name).Logger().Level(lvl)
	q.logger.Store(&l)
}

func (q *Queue) publish() {
	if q.metrics == nil {
		return
	}
	s := q.Stats()
	q.metrics.SetMany(map[string]any{
		q.name + ".len":        s.Len,
		q.name + ".cap":        s.Cap,
		q.name + ".full":       s.Len == s.Cap,
		q.name + ".accepted":   s.Accepted,
		q.name + ".rejected":   s.Rejected,
		q.name + ".delivered":  s.Delivered,
		q.name + ".underflows": s.Underflows,
	})
}
