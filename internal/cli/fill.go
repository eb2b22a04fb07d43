// File: internal/cli/fill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// fill command and the queue session shared with drain.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/msgqueue"
)

const metricsNamespace = "hioload_ring"

type fillOptions struct {
	configFile string
	capacity   int
	count      int
	mode       string
	logLevel   string
	probes     bool
	// drainLevel is applied through the config store once filling is done.
	drainLevel string
}

func (o *fillOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configFile, "config", "", "Path to queue config YAML (flags override file values)")
	cmd.Flags().IntVar(&o.capacity, "capacity", msgqueue.DefaultCapacity, "Queue capacity")
	cmd.Flags().IntVar(&o.count, "count", msgqueue.DefaultCapacity+1, "Number of messages to post")
	cmd.Flags().StringVar(&o.mode, "mode", string(msgqueue.DefaultMode), "Ring variant: basic, locked or spsc")
	cmd.Flags().StringVar(&o.logLevel, "log-level", msgqueue.DefaultLogLevel, "Queue log level")
	cmd.Flags().BoolVar(&o.probes, "probes", false, "Print debug probe state as JSON")
}

// config merges the optional file with explicitly set flags.
func (o *fillOptions) config(cmd *cobra.Command) (msgqueue.Config, error) {
	cfg := msgqueue.DefaultConfig()
	if o.count < 0 {
		return cfg, fmt.Errorf("%w: count %d", api.ErrInvalidArgument, o.count)
	}
	if o.configFile != "" {
		var err error
		if cfg, err = msgqueue.LoadConfigFile(o.configFile); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if o.configFile == "" || flags.Changed("capacity") {
		cfg.Capacity = o.capacity
	}
	if o.configFile == "" || flags.Changed("mode") {
		cfg.Mode = api.Mode(o.mode)
	}
	if o.configFile == "" || flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	return cfg, cfg.Validate()
}

// session is one queue plus the instrumentation around it.
type session struct {
	queue   *msgqueue.Queue
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	config  *control.ConfigStore
	logger  zerolog.Logger
}

func newSession(cfg msgqueue.Config, logger zerolog.Logger) (*session, error) {
	s := &session{
		metrics: control.NewMetricsRegistry(),
		probes:  control.NewDebugProbes(),
		config:  control.NewConfigStore(cfg.AsMap()),
		logger:  logger,
	}
	control.RegisterPlatformProbes(s.probes)
	s.probes.RegisterProbe("config", func() any { return s.config.GetSnapshot() })
	q, err := msgqueue.New(cfg,
		msgqueue.WithLogger(logger),
		msgqueue.WithMetrics(s.metrics),
		msgqueue.WithProbes(s.probes),
	)
	if err != nil {
		return nil, err
	}
	q.Watch(s.config)
	s.queue = q
	return s, nil
}

// setLogLevel pushes a queue log level change through the config store.
func (s *session) setLogLevel(level string) {
	if level == "" {
		return
	}
	s.config.SetConfig(map[string]any{msgqueue.KeyLogLevel: level})
}

// fill posts count labelled messages "0".."count-1" and returns how many
// were accepted. Rejections are expected once the queue is full.
func (s *session) fill(count int) (accepted int, err error) {
	labels := lo.Times(count, strconv.Itoa)
	firstRejected := -1
	for i, label := range labels {
		if _, err := s.queue.Post(label); err != nil {
			if !errors.Is(err, api.ErrCapacityExceeded) {
				return accepted, err
			}
			if firstRejected < 0 {
				firstRejected = i
				s.logger.Warn().
					Str("queue", s.queue.Name()).
					Int("index", i).
					Int("capacity", s.queue.Cap()).
					Msg("first message rejected, queue is full")
			}
			continue
		}
		accepted++
	}
	s.logger.Info().
		Str("queue", s.queue.Name()).
		Int("posted", count).
		Int("accepted", accepted).
		Int("rejected", count-accepted).
		Msg("fill complete")
	return accepted, nil
}

func (s *session) report(w io.Writer, withProbes bool) error {
	st := s.queue.Stats()
	fmt.Fprintf(w, "queue:    %s\n", st.Name)
	fmt.Fprintf(w, "capacity: %d\n", st.Cap)
	fmt.Fprintf(w, "length:   %d\n", st.Len)
	fmt.Fprintf(w, "state:    %s\n", st.State)
	fmt.Fprintf(w, "accepted: %d\n", st.Accepted)
	fmt.Fprintf(w, "rejected: %d\n", st.Rejected)

	reg := prometheus.NewRegistry()
	if err := reg.Register(control.NewCollector(metricsNamespace, s.metrics)); err != nil {
		return fmt.Errorf("registering metrics collector: %w", err)
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintln(w, "\nmetrics:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "  %s %g\n", mf.GetName(), m.GetGauge().GetValue())
		}
	}

	if withProbes {
		out, err := json.MarshalIndent(s.probes.DumpState(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding probes: %w", err)
		}
		fmt.Fprintf(w, "\nprobes:\n%s\n", out)
	}
	return nil
}

func newFillCommand(logger func() zerolog.Logger) *cobra.Command {
	opts := &fillOptions{}
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Post labelled messages until the queue rejects them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return fmt.Errorf("loading queue config: %w", err)
			}
			s, err := newSession(cfg, logger())
			if err != nil {
				return err
			}
			if _, err := s.fill(opts.count); err != nil {
				return err
			}
			return s.report(cmd.OutOrStdout(), opts.probes)
		},
	}
	opts.bind(cmd)
	return cmd
}
