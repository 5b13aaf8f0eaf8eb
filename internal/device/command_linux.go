//go:build linux

package device

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// runCommand executes a tool and returns its combined output. Swapped
// out in tests.
var runCommand = func(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return strings.TrimSpace(buf.String()), err
}

func hasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// fallbackScreenSize returns the screen dimensions for backends that
// cannot query them. JUGGLER_SCREEN (e.g. "2560x1440") overrides the
// 1920x1080 default.
func fallbackScreenSize() (int, int) {
	if v := os.Getenv("JUGGLER_SCREEN"); v != "" {
		parts := strings.SplitN(strings.ToLower(v), "x", 2)
		if len(parts) == 2 {
			w, werr := strconv.Atoi(strings.TrimSpace(parts[0]))
			h, herr := strconv.Atoi(strings.TrimSpace(parts[1]))
			if werr == nil && herr == nil && w > 0 && h > 0 {
				return w, h
			}
		}
		log.Printf("device: ignoring malformed JUGGLER_SCREEN %q", v)
	}
	return 1920, 1080
}

// Ydotool drives the cursor through the ydotool command, which injects
// events below the display server and so works on Wayland. There is no
// way to query the cursor that route; the device tracks the position
// it last set, starting at the screen center.
type Ydotool struct {
	mu   sync.Mutex
	x, y int
	w, h int
}

// NewYdotool creates the ydotool-backed pointer. Requires ydotoold to
// be running.
func NewYdotool() *Ydotool {
	w, h := fallbackScreenSize()
	return &Ydotool{x: w / 2, y: h / 2, w: w, h: h}
}

func (d *Ydotool) MoveTo(x, y int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := boundsCheck(x, y, d.w, d.h); err != nil {
		return err
	}
	out, err := runCommand("ydotool", "mousemove", "--absolute", "-x", strconv.Itoa(x), "-y", strconv.Itoa(y))
	if err != nil {
		return fmt.Errorf("ydotool mousemove: %v (output: %q)", err, out)
	}
	d.x, d.y = x, y
	return nil
}

func (d *Ydotool) Position() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.x, d.y
}

func (d *Ydotool) Size() (int, int) {
	return d.w, d.h
}

// Xdotool drives the cursor through the xdotool command on X11. An
// escape hatch for setups where native injection misbehaves; selected
// with JUGGLER_BACKEND=xdotool.
type Xdotool struct {
	mu   sync.Mutex
	x, y int
	w, h int
}

// NewXdotool creates the xdotool-backed pointer. The screen size is
// queried once; a resolution change mid-session is not picked up.
func NewXdotool() *Xdotool {
	d := &Xdotool{}
	d.w, d.h = d.queryScreenSize()
	d.x, d.y = d.w/2, d.h/2
	if x, y, err := d.queryPosition(); err == nil {
		d.x, d.y = x, y
	}
	return d
}

func (d *Xdotool) queryScreenSize() (int, int) {
	out, err := runCommand("xdotool", "getdisplaygeometry")
	if err == nil {
		fields := strings.Fields(out)
		if len(fields) == 2 {
			w, werr := strconv.Atoi(fields[0])
			h, herr := strconv.Atoi(fields[1])
			if werr == nil && herr == nil && w > 0 && h > 0 {
				return w, h
			}
		}
	}
	log.Printf("device: xdotool getdisplaygeometry failed, assuming default screen size")
	return fallbackScreenSize()
}

func (d *Xdotool) queryPosition() (int, int, error) {
	out, err := runCommand("xdotool", "getmouselocation", "--shell")
	if err != nil {
		return 0, 0, fmt.Errorf("xdotool getmouselocation: %v (output: %q)", err, out)
	}
	x, y := -1, -1
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, "X="); ok {
			x, _ = strconv.Atoi(strings.TrimSpace(v))
		}
		if v, ok := strings.CutPrefix(line, "Y="); ok {
			y, _ = strconv.Atoi(strings.TrimSpace(v))
		}
	}
	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("unexpected getmouselocation output %q", out)
	}
	return x, y, nil
}

func (d *Xdotool) MoveTo(x, y int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := boundsCheck(x, y, d.w, d.h); err != nil {
		return err
	}
	out, err := runCommand("xdotool", "mousemove", strconv.Itoa(x), strconv.Itoa(y))
	if err != nil {
		return fmt.Errorf("xdotool mousemove: %v (output: %q)", err, out)
	}
	d.x, d.y = x, y
	return nil
}

// Position returns the live cursor location, falling back to the last
// moved-to position when the query fails.
func (d *Xdotool) Position() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if x, y, err := d.queryPosition(); err == nil {
		d.x, d.y = x, y
	}
	return d.x, d.y
}

func (d *Xdotool) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.w, d.h
}
