//go:build linux

// Package evcode carries the subset of Linux's input-event-codes.h and
// input.h constants consulted by the evdev backend's translation tables.
// Values are taken verbatim from the kernel UAPI headers; this is data, not
// logic, so it is not reworded or renumbered. The exceptions are BtnPinkyR,
// BtnPinkyL and the absolute axes 0x0b..0x0f (AbsSlew through AbsScrollY),
// which have no kernel macro of their own.
package evcode

// Event types (struct input_event.Type).
const (
	EvSyn = 0x00
	EvKey = 0x01
	EvRel = 0x02
	EvAbs = 0x03
	EvMsc = 0x04
	EvFF  = 0x15
)

const MscScan = 0x04 // MSC_SCAN, suppressed from the unknown-code log

// Key codes (struct input_event.Code when Type == EvKey) outside the
// joystick BTN_* range, used by devices that report browser-style
// navigation keys for paddle buttons.
const (
	KeyBack    = 0x9e
	KeyForward = 0x9f
)

// Button codes (struct input_event.Code when Type == EvKey).
const (
	BtnTrigger = 0x120
	BtnThumb   = 0x121
	BtnThumb2  = 0x122
	BtnTop     = 0x123
	BtnTop2    = 0x124
	BtnPinkie  = 0x125
	BtnBase1   = 0x126
	BtnBase2   = 0x127
	BtnBase3   = 0x128
	BtnBase4   = 0x129
	BtnBase5   = 0x12a
	BtnBase6   = 0x12b
	BtnBase7   = 0x12c
	BtnBase8   = 0x12d
	BtnBase9   = 0x12e
	BtnBase10  = 0x12f

	BtnA      = 0x130 // BTN_A / BTN_SOUTH
	BtnB      = 0x131 // BTN_B / BTN_EAST
	BtnC      = 0x132
	BtnX      = 0x133 // BTN_X / BTN_NORTH
	BtnY      = 0x134 // BTN_Y / BTN_WEST
	BtnZ      = 0x135
	BtnTL     = 0x136
	BtnTR     = 0x137
	BtnTL2    = 0x138
	BtnTR2    = 0x139
	BtnSelect = 0x13a
	BtnStart  = 0x13b
	BtnMode   = 0x13c
	BtnThumbL = 0x13d
	BtnThumbR = 0x13e
	BtnPinkyR = 0x13f
	BtnPinkyL = 0x140

	BtnDpadUp    = 0x220
	BtnDpadDown  = 0x221
	BtnDpadLeft  = 0x222
	BtnDpadRight = 0x223

	// BtnTriggerHappy1 through BtnTriggerHappy40 are contiguous from
	// 0x2c0; callers compute offsets rather than naming all 40.
	BtnTriggerHappy1  = 0x2c0
	BtnTriggerHappy40 = 0x2e7
)

// Relative axis codes (struct input_event.Code when Type == EvRel).
const (
	RelX      = 0x00
	RelY      = 0x01
	RelHWheel = 0x06
	RelWheel  = 0x08
)

// Absolute axis codes (struct input_event.Code when Type == EvAbs).
const (
	AbsX         = 0x00
	AbsY         = 0x01
	AbsZ         = 0x02
	AbsRX        = 0x03
	AbsRY        = 0x04
	AbsRZ        = 0x05
	AbsThrottle  = 0x06
	AbsRudder    = 0x07
	AbsWheel     = 0x08
	AbsGas       = 0x09
	AbsBrake     = 0x0a
	AbsSlew      = 0x0b
	AbsThrottleL = 0x0c
	AbsThrottleR = 0x0d
	AbsScrollX   = 0x0e
	AbsScrollY   = 0x0f
	AbsHat0X     = 0x10
	AbsHat0Y     = 0x11
	AbsHat1X     = 0x12
	AbsHat1Y     = 0x13
	AbsHat2X     = 0x14
	AbsHat2Y     = 0x15
	AbsHat3X     = 0x16
	AbsHat3Y     = 0x17
	AbsMax       = 0x3f
)

// Force-feedback effect types (struct ff_effect.Type).
const FFRumble = 0x50 // FF_RUMBLE

// Miscellaneous ioctl-only constants used by the device and hotplug code.
const (
	EVIOCGVersionMagic = 'E'
)
