// Package hotkey provides the optional global key listener used to stop
// a run from anywhere, without the terminal needing focus.
package hotkey

import (
	"log"
	"sync"

	hook "github.com/robotn/gohook"
)

// Listener delivers a notification on the first global key press.
type Listener interface {
	// Start begins listening and calls onKey once, on the first key
	// press observed anywhere in the session.
	Start(onKey func()) error

	// Stop tears the listener down. Safe to call when not started.
	Stop()
}

// New returns the global key listener, or a no-op listener when the
// capability is disabled.
func New(enabled bool) Listener {
	if !enabled {
		return Noop{}
	}
	return &Global{}
}

// Noop is the fallback listener used when global hooks are disabled or
// unsupported. It never fires; stopping then falls back to the other
// triggers.
type Noop struct{}

// Start implements Listener.
func (Noop) Start(func()) error { return nil }

// Stop implements Listener.
func (Noop) Stop() {}

// Global listens for any key press system-wide through gohook.
// Only keyboard events are registered: the session's own synthetic
// pointer moves show up in a global mouse hook and must not cancel
// the run they belong to.
type Global struct {
	mu      sync.Mutex
	running bool
}

// Start registers a system-wide key-down hook and begins processing
// events on a background goroutine.
func (g *Global) Start(onKey func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return nil
	}

	var once sync.Once
	hook.Register(hook.KeyDown, []string{}, func(hook.Event) {
		once.Do(onKey)
	})

	events := hook.Start()
	g.running = true
	go func() {
		<-hook.Process(events)
	}()

	log.Printf("hotkey: any key press will stop the run")
	return nil
}

// Stop ends the global hook.
func (g *Global) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.running {
		return
	}
	hook.End()
	g.running = false
}
