//go:build windows
// +build windows

package main

import (
	"os"
	"syscall"
)

// stopSignals lists the signals that end a run. Windows delivers only
// SIGINT and SIGTERM.
func stopSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}

func isSuspend(sig os.Signal) bool {
	return false
}
