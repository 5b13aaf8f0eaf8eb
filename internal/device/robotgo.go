package device

import (
	"log"

	"github.com/go-vgo/robotgo"
)

// Robot drives the real system cursor through robotgo.
type Robot struct{}

// NewRobot creates the robotgo-backed pointer device and logs a warning
// when the session is unlikely to accept synthetic pointer moves.
func NewRobot() *Robot {
	if msg := sessionWarning(); msg != "" {
		log.Printf("device: %s", msg)
	}
	return &Robot{}
}

// MoveTo repositions the cursor. The screen size is read live so a
// resolution change mid-session rejects stale coordinates instead of
// pinning the cursor to an edge.
func (r *Robot) MoveTo(x, y int) error {
	w, h := robotgo.GetScreenSize()
	if err := boundsCheck(x, y, w, h); err != nil {
		return err
	}
	robotgo.Move(x, y)
	return nil
}

// Position returns the current cursor location.
func (r *Robot) Position() (int, int) {
	return robotgo.Location()
}

// Size returns the screen dimensions in pixels.
func (r *Robot) Size() (int, int) {
	return robotgo.GetScreenSize()
}
