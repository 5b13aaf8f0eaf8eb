// Package device abstracts the system pointer behind a small synchronous
// interface.
package device

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds marks a move rejected because the coordinate falls
// outside the screen.
var ErrOutOfBounds = errors.New("coordinate out of screen bounds")

// Pointer is the cursor-control surface consumed by the movement loop.
// All methods are synchronous and safe to call rapidly from a single
// goroutine.
type Pointer interface {
	// MoveTo repositions the cursor, rejecting coordinates outside the
	// screen with an error wrapping ErrOutOfBounds.
	MoveTo(x, y int) error

	// Position returns the current cursor location.
	Position() (x, y int)

	// Size returns the screen dimensions in pixels.
	Size() (w, h int)
}

// boundsCheck validates a coordinate against a w by h screen.
func boundsCheck(x, y, w, h int) error {
	if x < 0 || y < 0 || x >= w || y >= h {
		return fmt.Errorf("%w: (%d,%d) on %dx%d screen", ErrOutOfBounds, x, y, w, h)
	}
	return nil
}
