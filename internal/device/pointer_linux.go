//go:build linux

package device

import (
	"log"
	"os"
)

// NewPointer selects a backend for the session. Native injection via
// robotgo works everywhere X11 does; on Wayland the compositor ignores
// it, so ydotool and then uinput are tried first there. Set
// JUGGLER_BACKEND to robotgo, xdotool, ydotool or uinput to force one.
func NewPointer() Pointer {
	switch backend := os.Getenv("JUGGLER_BACKEND"); backend {
	case "":
	case "robotgo":
		return NewRobot()
	case "xdotool":
		log.Printf("device: using xdotool backend")
		return NewXdotool()
	case "ydotool":
		log.Printf("device: using ydotool backend")
		return NewYdotool()
	case "uinput":
		u, err := NewUinput()
		if err == nil {
			log.Printf("device: using uinput backend")
			return u
		}
		log.Printf("device: uinput backend unavailable: %v", err)
	default:
		log.Printf("device: unknown backend %q, selecting automatically", backend)
	}

	if DetectDisplayServer() == DisplayServerWayland {
		if hasCommand("ydotool") {
			if _, err := runCommand("ydotool", "mousemove", "-x", "0", "-y", "0"); err == nil {
				log.Printf("device: wayland session, using ydotool backend")
				return NewYdotool()
			}
			log.Printf("device: ydotool present but not responding (is ydotoold running?)")
		}
		u, err := NewUinput()
		if err == nil {
			log.Printf("device: wayland session, using uinput backend")
			return u
		}
		log.Printf("device: uinput unavailable: %v", err)
	}
	return NewRobot()
}
