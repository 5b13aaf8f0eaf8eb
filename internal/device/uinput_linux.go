//go:build linux

package device

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"unsafe"
)

// uinput protocol constants.
const (
	uinputPath = "/dev/uinput"

	evSyn = 0x00
	evRel = 0x02
	relX  = 0x00
	relY  = 0x01

	// _IOW('U', 100, int), _IOW('U', 101, int), _IO('U', 1), _IO('U', 2)
	uiSetEvBit   = 0x40045564
	uiSetRelBit  = 0x40045565
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
)

type uinputID struct {
	bustype uint16
	vendor  uint16
	product uint16
	version uint16
}

type uinputUserDev struct {
	name         [80]byte
	id           uinputID
	ffEffectsMax uint32
	absMax       [64]int32
	absMin       [64]int32
	absFuzz      [64]int32
	absFlat      [64]int32
}

type inputEvent struct {
	time  syscall.Timeval
	etype uint16
	code  uint16
	value int32
}

// Uinput drives the cursor through a virtual relative-motion device on
// /dev/uinput, below any display server. The kernel offers no position
// query, so the device tracks the position it steered to, starting at
// the screen center. Pointer acceleration can make the real cursor
// drift from the tracked one; the generated activity is unaffected.
type Uinput struct {
	mu   sync.Mutex
	file *os.File
	x, y int
	w, h int
}

// NewUinput creates the virtual device. Requires write access to
// /dev/uinput (input group membership or a udev rule).
func NewUinput() (*Uinput, error) {
	f, err := os.OpenFile(uinputPath, os.O_WRONLY|syscall.O_NONBLOCK, 0o660)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uinputPath, err)
	}

	u := &Uinput{file: f}
	u.w, u.h = fallbackScreenSize()
	u.x, u.y = u.w/2, u.h/2

	if err := u.enableRelativeAxes(); err != nil {
		f.Close()
		return nil, fmt.Errorf("enable relative axes: %w", err)
	}
	if err := u.createDevice(); err != nil {
		f.Close()
		return nil, fmt.Errorf("create virtual device: %w", err)
	}
	return u, nil
}

func (u *Uinput) ioctl(req, arg uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, u.file.Fd(), req, arg); errno != 0 {
		return errno
	}
	return nil
}

func (u *Uinput) enableRelativeAxes() error {
	if err := u.ioctl(uiSetEvBit, evRel); err != nil {
		return err
	}
	if err := u.ioctl(uiSetRelBit, relX); err != nil {
		return err
	}
	return u.ioctl(uiSetRelBit, relY)
}

func (u *Uinput) createDevice() error {
	var dev uinputUserDev
	copy(dev.name[:], "juggler-pointer")
	dev.id.bustype = 0x03 // USB
	dev.id.vendor = 0x1d6b
	dev.id.product = 0x0104

	buf := (*[unsafe.Sizeof(dev)]byte)(unsafe.Pointer(&dev))[:]
	if _, err := u.file.Write(buf); err != nil {
		return err
	}
	return u.ioctl(uiDevCreate, 0)
}

func (u *Uinput) writeEvents(events []inputEvent) error {
	for i := range events {
		buf := (*[unsafe.Sizeof(events[i])]byte)(unsafe.Pointer(&events[i]))[:]
		if _, err := u.file.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// MoveTo steers the cursor by emitting the relative delta from the
// tracked position.
func (u *Uinput) MoveTo(x, y int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := boundsCheck(x, y, u.w, u.h); err != nil {
		return err
	}

	events := []inputEvent{
		{etype: evRel, code: relX, value: int32(x - u.x)},
		{etype: evRel, code: relY, value: int32(y - u.y)},
		{etype: evSyn},
	}
	if err := u.writeEvents(events); err != nil {
		return err
	}
	u.x, u.y = x, y
	return nil
}

func (u *Uinput) Position() (int, int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.x, u.y
}

func (u *Uinput) Size() (int, int) {
	return u.w, u.h
}

// Close destroys the virtual device.
func (u *Uinput) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.file == nil {
		return nil
	}
	_ = u.ioctl(uiDevDestroy, 0)
	err := u.file.Close()
	u.file = nil
	return err
}
