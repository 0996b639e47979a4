//go:build linux

package linux

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/corvid-io/padstream"
	"golang.org/x/sys/unix"
)

func ptrAt(buf []byte, offset int) unsafe.Pointer {
	return unsafe.Pointer(&buf[offset])
}

const byIDDir = "/dev/input/by-id"

// Hotplug watches /dev/input/by-id for newly announced controllers via
// inotify, after an initial glob enumeration of whatever is already
// present. It implements [padstream.Hotplug].
type Hotplug struct {
	watchFD int
	wd      int
}

var _ padstream.Hotplug = (*Hotplug)(nil)

// NewHotplug opens the inotify instance and starts watching byIDDir for
// new device nodes and attribute changes (udev applies ID_INPUT_JOYSTICK
// etc. as attribute changes after the node first appears).
func NewHotplug() (*Hotplug, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("linux.NewHotplug: %w", err)
	}

	wd, err := unix.InotifyAddWatch(fd, byIDDir, unix.IN_CREATE|unix.IN_ATTRIB)
	if err != nil {
		unix.Close(fd)

		return nil, fmt.Errorf("linux.NewHotplug: %w", err)
	}

	return &Hotplug{watchFD: fd, wd: wd}, nil
}

// Enumerate globs every controller node already present.
func (h *Hotplug) Enumerate() ([]padstream.Port, error) {
	paths, err := filepath.Glob(filepath.Join(byIDDir, "*-event-joystick"))
	if err != nil {
		return nil, fmt.Errorf("Hotplug.Enumerate: %w", err)
	}

	ports := make([]padstream.Port, 0, len(paths))

	for _, path := range paths {
		dev, err := openWithRetry(path)
		if err != nil {
			continue
		}

		ports = append(ports, dev)
	}

	return ports, nil
}

// FD returns the inotify fd for [unix.Poll].
func (h *Hotplug) FD() int {
	return h.watchFD
}

// Next reads one pending inotify event batch and returns the first newly
// announced controller it names, or [padstream.ErrWouldBlock] if nothing
// is pending. Events for paths that don't match the joystick naming
// convention, or that open with a transient error, are skipped; the caller
// calls Next again to keep draining the same batch.
func (h *Hotplug) Next() (padstream.Port, error) {
	buf := make([]byte, 64*(unix.SizeofInotifyEvent+256))

	n, err := unix.Read(h.watchFD, buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) {
			return nil, padstream.ErrWouldBlock
		}

		return nil, fmt.Errorf("Hotplug.Next: %w", err)
	}

	for offset := 0; offset+unix.SizeofInotifyEvent <= n; {
		raw := (*unix.InotifyEvent)(ptrAt(buf, offset))
		nameLen := int(raw.Len)
		nameStart := offset + unix.SizeofInotifyEvent
		name := cString(buf[nameStart : nameStart+nameLen])

		offset = nameStart + nameLen

		if !isJoystickNode(name) {
			continue
		}

		dev, err := openWithRetry(filepath.Join(byIDDir, name))
		if err != nil {
			continue
		}

		return dev, nil
	}

	return nil, padstream.ErrWouldBlock
}

// Close deregisters the watch and releases the inotify fd.
func (h *Hotplug) Close() error {
	unix.InotifyRmWatch(h.watchFD, uint32(h.wd))

	if err := unix.Close(h.watchFD); err != nil {
		return fmt.Errorf("Hotplug.Close: %w", err)
	}

	return nil
}

func isJoystickNode(name string) bool {
	const suffix = "-event-joystick"

	return len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}

	return string(b)
}

// openWithRetry retries a transient EACCES a bounded number of times: udev
// may still be adjusting node permissions in the moment right after the
// inotify CREATE/ATTRIB fires.
func openWithRetry(path string) (*Device, error) {
	const (
		attempts = 3
		backoff  = 10 * time.Millisecond
	)

	var lastErr error

	for i := 0; i < attempts; i++ {
		dev, err := Open(path)
		if err == nil {
			return dev, nil
		}

		lastErr = err
		if !errors.Is(err, unix.EACCES) {
			return nil, lastErr
		}

		time.Sleep(backoff)
	}

	return nil, lastErr
}
