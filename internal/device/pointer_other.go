//go:build !linux

package device

// NewPointer returns the native robotgo backend; the command and
// uinput fallbacks only exist on Linux.
func NewPointer() Pointer {
	return NewRobot()
}
