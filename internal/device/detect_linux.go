//go:build linux

package device

import "os"

// Display server types.
const (
	DisplayServerWayland = "wayland"
	DisplayServerX11     = "x11"
	DisplayServerUnknown = "unknown"
)

// DetectDisplayServer reports whether the session runs Wayland or X11.
func DetectDisplayServer() string {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if os.Getenv("XDG_SESSION_TYPE") == DisplayServerWayland {
		return DisplayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	if os.Getenv("XDG_SESSION_TYPE") == DisplayServerX11 {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}

// sessionWarning returns a human-readable warning when the display
// server is unlikely to accept synthetic pointer moves.
func sessionWarning() string {
	switch DetectDisplayServer() {
	case DisplayServerWayland:
		return "wayland session detected; most compositors block synthetic pointer moves, cursor may not follow"
	case DisplayServerUnknown:
		return "no display server detected; pointer moves will likely fail"
	}
	return ""
}
