//go:build linux

package linux

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/corvid-io/padstream"
	"github.com/corvid-io/padstream/linux/internal/evcode"
	"github.com/corvid-io/padstream/linux/internal/ioctl"
	"golang.org/x/sys/unix"
)

const eventRecordSize = int(unsafe.Sizeof(evdevEvent{}))

// Device is an open evdev node implementing [padstream.Port]. It owns the
// fd exclusively: raw reads go directly through [unix.Read] rather than
// (*os.File).Read, so EAGAIN classification and [unix.Poll] readiness stay
// in the caller's control exactly as spec.md's "no retry loop inside
// read_raw" requires.
type Device struct {
	file *os.File
	fd   int

	id   padstream.HardwareID
	name string

	axisCal map[uint16]padstream.AxisCalibration
	hats    padstream.HatTracker

	ffID    int16
	hasFF   bool
	closed  bool
}

var _ padstream.Port = (*Device)(nil)

// Open opens the evdev node at path, falling back read-write → read-only →
// write-only (a write-only open is still useful: some devices expose
// haptic output on a node with no readable input capability), then reads
// its identity and axis calibration.
func Open(path string) (*Device, error) {
	path = filepath.Clean(path)

	file, err := openFallback(path)
	if err != nil {
		return nil, fmt.Errorf("linux.Open: %w", err)
	}

	fd := int(file.Fd())

	if err := unix.SetNonblock(fd, true); err != nil {
		file.Close()

		return nil, fmt.Errorf("linux.Open: %w", err)
	}

	dev := &Device{file: file, fd: fd, ffID: -1}

	if err := dev.readIdentity(); err != nil {
		file.Close()

		return nil, fmt.Errorf("linux.Open: %w", err)
	}

	dev.readAxisCalibration()

	return dev, nil
}

func openFallback(path string) (*os.File, error) {
	modes := []int{os.O_RDWR, os.O_RDONLY, os.O_WRONLY}

	var lastErr error

	for _, mode := range modes {
		file, err := os.OpenFile(path, mode, 0)
		if err == nil {
			return file, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (d *Device) readIdentity() error {
	var id inputID

	if err := ioctl.Any(uintptr(d.fd), evIOCGID, &id); err != nil {
		return fmt.Errorf("Device.readIdentity: %w", err)
	}

	d.id = padstream.NewHardwareID(id.Bustype, id.Vendor, id.Product, id.Version)

	buf := make([]byte, 256)
	if err := ioctl.Any(uintptr(d.fd), evIOCGNAME(uint(len(buf))), &buf[0]); err != nil {
		return fmt.Errorf("Device.readIdentity: %w", err)
	}

	d.name = unix.ByteSliceToString(buf)

	return nil
}

func (d *Device) readAxisCalibration() {
	d.axisCal = make(map[uint16]padstream.AxisCalibration)

	for code := uint16(0); code <= evcode.AbsMax; code++ {
		var info absInfo

		if err := ioctl.Any(uintptr(d.fd), evIOCGABS(uint(code)), &info); err != nil {
			continue
		}

		if info.Minimum == 0 && info.Maximum == 0 {
			continue
		}

		d.axisCal[code] = padstream.NewAxisCalibration(info.Minimum, info.Maximum, info.Flat)
	}
}

// HardwareID reports the stable identifier read at open time.
func (d *Device) HardwareID() padstream.HardwareID {
	return d.id
}

// Name reports the display name read at open time.
func (d *Device) Name() string {
	return d.name
}

// FD returns the underlying fd for [unix.Poll].
func (d *Device) FD() int {
	return d.fd
}

// Drain reads at most one raw input_event record and, if the focus gate is
// enabled, translates it into zero or more abstract events appended to q.
func (d *Device) Drain(q *padstream.EventQueue) error {
	buf := make([]byte, eventRecordSize)

	n, err := unix.Read(d.fd, buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			return padstream.ErrWouldBlock
		}

		if errors.Is(err, unix.ENODEV) {
			return padstream.ErrDisconnected
		}

		return fmt.Errorf("Device.Drain: %w", err)
	}

	if n == 0 {
		return padstream.ErrDisconnected
	}

	if n != eventRecordSize {
		return padstream.ErrWouldBlock
	}

	ev := *(*evdevEvent)(unsafe.Pointer(&buf[0]))

	if !padstream.Focused() {
		return nil
	}

	d.translate(ev, q)

	return nil
}

func (d *Device) translate(ev evdevEvent, q *padstream.EventQueue) {
	switch ev.Type {
	case evcode.EvSyn, evcode.EvFF:
		return
	case evcode.EvKey:
		if out, ok := translateButton(ev.Code, ev.Value); ok {
			q.Push(out)
		}

		return
	case evcode.EvRel:
		if out, ok := translateRelative(ev.Code, ev.Value); ok {
			q.Push(out)
		}

		return
	case evcode.EvMsc:
		if ev.Code != evcode.MscScan {
			slog.Warn("padstream/linux: unknown misc code", "code", ev.Code, "value", ev.Value)
		}

		return
	case evcode.EvAbs:
		d.translateAbs(ev.Code, ev.Value, q)

		return
	default:
		slog.Warn("padstream/linux: unknown event type", "type", ev.Type)
	}
}

func (d *Device) translateAbs(code uint16, value int32, q *padstream.EventQueue) {
	if hat, ok := hatAxes[code]; ok {
		d.hats.Update(hat.pair, hat.isY, value, q)

		return
	}

	kind, ok := absoluteKinds[code]
	if !ok {
		slog.Warn("padstream/linux: unknown absolute axis code", "code", code, "hint", "report an issue with this device's name and bus id")

		return
	}

	cal := d.axisCal[code]
	q.Push(padstream.Float(kind, padstream.NormalizeAxis(value, cal)))
}

// Rumble uploads (or updates) a dual-motor force-feedback effect and plays
// it. strong and weak are already clamped to [0.0, 1.0] by the caller. A
// device with no force-feedback support (EVIOCSFF returns ENOTTY/EINVAL)
// is treated as a no-op, never an error.
func (d *Device) Rumble(strong, weak float64) error {
	effect := ffEffect{
		Type: evcode.FFRumble,
		ID:   d.ffID,
		Rumble: ffRumbleEffect{
			StrongMagnitude: uint16(strong * 0xffff),
			WeakMagnitude:   uint16(weak * 0xffff),
		},
	}

	if err := ioctl.Any(uintptr(d.fd), evIOCSFF, &effect); err != nil {
		if errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.EINVAL) {
			return nil
		}

		return fmt.Errorf("Device.Rumble: %w", err)
	}

	d.ffID = effect.ID
	d.hasFF = true

	play := evdevEvent{Type: evcode.EvFF, Code: uint16(d.ffID), Value: 1}
	buf := (*[eventRecordSize]byte)(unsafe.Pointer(&play))[:]

	if _, err := unix.Write(d.fd, buf); err != nil {
		return fmt.Errorf("Device.Rumble: %w", err)
	}

	return nil
}

// Close releases the device fd and, if a force-feedback effect was
// uploaded, erases it first. It is idempotent.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}

	d.closed = true

	if d.hasFF {
		unix.IoctlSetInt(d.fd, evIOCRMFF, int(d.ffID))
	}

	if err := d.file.Close(); err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}
