// File: cmd/ringctl/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ringctl drives hioload-ring message queues from the command line.

package main

import (
	"os"

	"github.com/momentics/hioload-ring/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
