//go:build !windows
// +build !windows

package main

import (
	"os"
	"syscall"
)

// stopSignals lists the signals that end a run. SIGTSTP is among
// them: suspend is not supported, so Ctrl+Z stops instead.
func stopSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGTSTP}
}

func isSuspend(sig os.Signal) bool {
	return sig == syscall.SIGTSTP
}
