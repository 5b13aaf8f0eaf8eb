//go:build windows
// +build windows

package integration

import (
	"os"
	"syscall"
)

func interruptSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}

// suspendSignals matches interruptSignals: Windows has no SIGTSTP.
func suspendSignals() []os.Signal {
	return interruptSignals()
}

func sendSuspend(proc *os.Process) error {
	// No SIGTSTP on Windows; SIGTERM stands in.
	return proc.Signal(syscall.SIGTERM)
}
