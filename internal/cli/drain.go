// File: internal/cli/drain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/momentics/hioload-ring/msgqueue"
)

func newDrainCommand(logger func() zerolog.Logger) *cobra.Command {
	opts := &fillOptions{}
	cmd := &cobra.Command{
		Use:   "drain",
		Short: "Fill a queue, then print its messages in FIFO order",
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
			s.setLogLevel(opts.drainLevel)
			w := cmd.OutOrStdout()
			n := s.queue.Drain(func(m *msgqueue.Message) {
				fmt.Fprintf(w, "%d\t%s\n", m.ID, m.Body)
			})
			s.logger.Info().Int("drained", n).Msg("drain complete")
			return s.report(w, opts.probes)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.drainLevel, "drain-log-level", "", "Queue log level to switch to after filling, before draining")
	return cmd
}
