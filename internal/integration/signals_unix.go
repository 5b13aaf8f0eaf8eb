//go:build !windows
// +build !windows

package integration

import (
	"os"
	"syscall"
)

// interruptSignals is the set a headless run subscribes to.
func interruptSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
}

// suspendSignals adds SIGTSTP so Ctrl+Z stops the session instead of
// suspending the process mid-travel.
func suspendSignals() []os.Signal {
	return append(interruptSignals(), syscall.SIGTSTP)
}

func sendSuspend(proc *os.Process) error {
	return proc.Signal(syscall.SIGTSTP)
}
