// File: internal/cli/root.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package cli implements the ringctl command tree.
package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCommand builds the ringctl command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "ringctl",
		Short: "Drive bounded message queues from the command line",
		Long: `ringctl fills and drains fixed-capacity message queues backed by
hioload-ring buffers, reporting accepted and rejected inserts along with
the exported queue metrics.`,
		SilenceUsage: true,
	}

	logger := func() zerolog.Logger {
		return zerolog.New(zerolog.ConsoleWriter{Out: logOut, NoColor: true}).
			With().Timestamp().Str("component", "ringctl").Logger()
	}

	root.AddCommand(newFillCommand(logger))
	root.AddCommand(newDrainCommand(logger))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("ringctl v%s\n", Version)
		},
	})
	return root
}
