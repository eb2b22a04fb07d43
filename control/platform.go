// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform debug probe integrations.

package control

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// RegisterPlatformProbes sets platform-level debug values.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOARCH
	})
	// Relevant to SPSC rings: padding only pays off when atomics are cheap.
	dp.RegisterProbe("platform.x86_sse2", func() any {
		return cpu.X86.HasSSE2
	})
}
