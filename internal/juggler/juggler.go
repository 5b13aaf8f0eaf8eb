// Package juggler coordinates movement sessions: the cancellation
// signal, the session loop, and the control surface the UI and CLI
// drive.
package juggler

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/kjetilmb/mouse-juggler/internal/config"
	"github.com/kjetilmb/mouse-juggler/internal/device"
	"github.com/kjetilmb/mouse-juggler/internal/hotkey"
)

// DefaultStopTimeout bounds how long Stop waits for the worker to
// wind down before giving up.
const DefaultStopTimeout = 5 * time.Second

// Stats is a snapshot of a session's progress.
type Stats struct {
	Travels int       // completed travels
	Pixels  int64     // path length moved, in whole pixels
	Started time.Time // zero when never started
}

// Juggler owns the lifecycle of movement sessions: at most one at a
// time, each with its own fresh stop signal. All methods are safe for
// concurrent use.
type Juggler struct {
	mu       sync.Mutex
	running  bool
	sig      *Signal
	sess     *session
	done     chan struct{}
	timer    *time.Timer
	endTime  time.Time
	dev      device.Pointer
	listener hotkey.Listener
}

// New returns a Juggler driving the given pointer device. listener
// may be nil when no global hotkey capability exists.
func New(dev device.Pointer, listener hotkey.Listener) *Juggler {
	return &Juggler{dev: dev, listener: listener}
}

// IsRunning returns true if a session is active.
func (j *Juggler) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

// Start launches a session with the given config and runs until
// stopped. Starting while a session is already running is a no-op.
// An invalid config is rejected and no session starts.
func (j *Juggler) Start(cfg config.Config) error {
	return j.start(cfg, 0)
}

// StartTimed launches a session that stops itself after d. A
// non-positive d runs until stopped, like Start.
func (j *Juggler) StartTimed(cfg config.Config, d time.Duration) error {
	return j.start(cfg, d)
}

func (j *Juggler) start(cfg config.Config, d time.Duration) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sig := &Signal{}
	sess := newSession(cfg, j.dev, sig, rand.New(rand.NewSource(time.Now().UnixNano())))
	done := make(chan struct{})

	j.sig = sig
	j.sess = sess
	j.done = done
	j.running = true
	j.endTime = time.Time{}

	if d > 0 {
		j.endTime = time.Now().Add(d)
		j.timer = time.AfterFunc(d, func() {
			_ = j.Stop()
		})
	}

	if j.listener != nil && cfg.Hotkey {
		err := j.listener.Start(func() {
			log.Printf("juggler: global key press, stopping")
			go func() { _ = j.Stop() }()
		})
		if err != nil {
			log.Printf("juggler: global key listener unavailable: %v", err)
		}
	}

	go func() {
		defer close(done)
		sess.run()
	}()

	if d > 0 {
		log.Printf("juggler: started (duration=%s)", d)
	} else {
		log.Printf("juggler: started (until stopped)")
	}
	return nil
}

// Stop ends the active session and waits for the worker to exit,
// bounded by DefaultStopTimeout. Stopping an idle Juggler is a no-op.
func (j *Juggler) Stop() error {
	return j.StopWithTimeout(DefaultStopTimeout)
}

// StopWithTimeout is Stop with an explicit bound on how long to wait
// for the worker to wind down.
func (j *Juggler) StopWithTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultStopTimeout
	}

	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return nil
	}
	if j.timer != nil {
		j.timer.Stop()
		j.timer = nil
	}
	j.sig.Set()
	j.running = false
	j.endTime = time.Time{}
	listener := j.listener
	done := j.done
	j.mu.Unlock()

	if listener != nil {
		listener.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case <-done:
		log.Printf("juggler: stopped")
		return nil
	case <-ctx.Done():
		log.Printf("juggler: worker did not wind down within %s", timeout)
		return fmt.Errorf("stop timed out after %s: %w", timeout, ctx.Err())
	}
}

// TimeRemaining returns the time left of a timed session, zero for
// untimed or idle sessions.
func (j *Juggler) TimeRemaining() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running || j.endTime.IsZero() {
		return 0
	}
	remaining := time.Until(j.endTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Stats returns a snapshot of the current session, or of the most
// recent one after a stop.
func (j *Juggler) Stats() Stats {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.sess == nil {
		return Stats{}
	}
	return j.sess.stats()
}
