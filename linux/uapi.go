//go:build linux

package linux

import (
	"github.com/corvid-io/padstream/linux/internal/evcode"
	"github.com/corvid-io/padstream/linux/internal/ioctl"
)

// inputID mirrors struct input_id, read by [evIOCGID].
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// absInfo mirrors struct input_absinfo, read by [evIOCGABS].
type absInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// ffTrigger mirrors struct ff_trigger, embedded in [ffEffect].
type ffTrigger struct {
	Button   uint16
	Interval uint16
}

// ffReplay mirrors struct ff_replay, embedded in [ffEffect].
type ffReplay struct {
	Length uint16
	Delay  uint16
}

// ffRumbleEffect mirrors struct ff_rumble_effect.
type ffRumbleEffect struct {
	StrongMagnitude uint16
	WeakMagnitude   uint16
}

// ffEffect mirrors the subset of struct ff_effect this backend uses: only
// the FF_RUMBLE union member is populated, the rest of the union's storage
// is covered by padding so the struct has the kernel's expected size (48
// bytes on 64-bit kernels, with the union 8-byte aligned at offset 16).
type ffEffect struct {
	Type      uint16
	ID        int16
	Direction uint16
	Trigger   ffTrigger
	Replay    ffReplay
	_         [2]byte // alignment padding before the union
	Rumble    ffRumbleEffect
	_         [28]byte // unused union members (constant/ramp/periodic/condition)
}

// evdevEvent mirrors struct input_event on 64-bit kernels (16-byte
// timeval).
type evdevEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

var (
	evIOCGID  = ioctl.IOR(evcode.EVIOCGVersionMagic, 0x02, inputID{})
	evIOCSFF  = ioctl.IOW(evcode.EVIOCGVersionMagic, 0x80, ffEffect{})
	evIOCRMFF = ioctl.IOW(evcode.EVIOCGVersionMagic, 0x81, int32(0))
)

func evIOCGNAME(length uint) uint {
	return ioctl.IOC(ioctl.ReadDir, evcode.EVIOCGVersionMagic, 0x06, length)
}

func evIOCGABS(abs uint) uint {
	return ioctl.IOR(evcode.EVIOCGVersionMagic, 0x40+abs, absInfo{})
}
