package juggler

import (
	"sync/atomic"
	"time"
)

// WaitSlice is the longest uninterruptible sleep anywhere in a
// session. Waits above it are cut into slices with a cancellation
// check before each, so stop latency is bounded by one slice.
const WaitSlice = 100 * time.Millisecond

// Signal is the latching stop condition shared by everything in one
// session: the worker polls it, the UI, the global key listener, the
// run timer and the OS signal handler set it. Each session gets a
// fresh Signal so a new run starts clear.
type Signal struct {
	fired atomic.Bool
}

// Set latches the signal. Idempotent and safe from any goroutine.
func (s *Signal) Set() {
	s.fired.Store(true)
}

// Stopped reports whether the signal has been latched.
func (s *Signal) Stopped() bool {
	return s.fired.Load()
}

// Wait sleeps for d, slicing anything longer than WaitSlice so the
// signal is checked along the way. Returns false as soon as the
// signal is observed set; true when the full wait elapsed unstopped.
func (s *Signal) Wait(d time.Duration) bool {
	for d > 0 {
		if s.Stopped() {
			return false
		}
		slice := d
		if slice > WaitSlice {
			slice = WaitSlice
		}
		time.Sleep(slice)
		d -= slice
	}
	return !s.Stopped()
}
