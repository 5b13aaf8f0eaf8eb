package motion

import (
	"log"
	"time"
)

// Mover issues absolute pointer moves. Implementations must be
// synchronous and safe to call rapidly from a single goroutine.
type Mover interface {
	MoveTo(x, y int) error
}

// StopSignal is the cancellation surface checked between movement steps
// and honored inside waits.
type StopSignal interface {
	// Stopped reports whether a stop has been requested.
	Stopped() bool

	// Wait sleeps for roughly d, returning false early if a stop is
	// requested mid-wait.
	Wait(d time.Duration) bool
}

// Scheduler walks trajectories on a pointer device.
type Scheduler struct {
	dev Mover
}

// NewScheduler creates a scheduler driving the given device.
func NewScheduler(dev Mover) *Scheduler {
	return &Scheduler{dev: dev}
}

// Play moves the pointer through the trajectory, waiting each per-step
// delay in between. The destination is always issued as its own final
// move so arrival is exact. A move the device rejects is logged and
// skipped, never fatal. Returns false if the stop signal interrupted
// the travel before the final move.
func (s *Scheduler) Play(t Trajectory, stop StopSignal) bool {
	if len(t.Points) == 0 {
		return true
	}
	for i := 0; i < len(t.Points)-1; i++ {
		if stop.Stopped() {
			return false
		}
		s.move(t.Points[i])
		if !stop.Wait(t.Delays[i]) {
			return false
		}
	}
	if stop.Stopped() {
		return false
	}
	s.move(t.Points[len(t.Points)-1])
	return true
}

func (s *Scheduler) move(p Point) {
	x, y := p.Round()
	if err := s.dev.MoveTo(x, y); err != nil {
		log.Printf("sched: move to (%d,%d) skipped: %v", x, y, err)
	}
}
