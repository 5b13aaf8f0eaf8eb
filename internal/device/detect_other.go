//go:build !linux

package device

// sessionWarning is only meaningful on Linux, where the display server
// decides whether synthetic pointer moves are allowed.
func sessionWarning() string {
	return ""
}
