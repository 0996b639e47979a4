//go:build windows

// Package windows implements the Platform Port (A) for Windows via
// XInput: dynamic DLL resolution across the documented fallback chain,
// 4-slot packet-number-diffed polling, and a timer-driven hotplug scan.
package windows

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Deadzone and trigger-threshold constants from the XInput documentation,
// applied before the shared normalize.go helpers run so Windows devices
// report identically normalized output to Linux ones for the same
// abstract axis.
const (
	leftThumbDeadzone  = 7849
	rightThumbDeadzone = 8689
	triggerThreshold   = 30
)

// gamepadButton bitmask values from XINPUT_GAMEPAD.wButtons.
const (
	btnDPadUp        = 0x0001
	btnDPadDown      = 0x0002
	btnDPadLeft      = 0x0004
	btnDPadRight     = 0x0008
	btnStart         = 0x0010
	btnBack          = 0x0020
	btnLeftThumb     = 0x0040
	btnRightThumb    = 0x0080
	btnLeftShoulder  = 0x0100
	btnRightShoulder = 0x0200
	btnA             = 0x1000
	btnB             = 0x2000
	btnX             = 0x4000
	btnY             = 0x8000
)

// gamepad mirrors XINPUT_GAMEPAD.
type gamepad struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// state mirrors XINPUT_STATE.
type state struct {
	PacketNumber uint32
	Gamepad      gamepad
}

// vibration mirrors XINPUT_VIBRATION.
type vibration struct {
	LeftMotorSpeed  uint16
	RightMotorSpeed uint16
}

// dllCandidates is the documented resolution order: newest redistributable
// first, falling back to the version bundled with the OS.
var dllCandidates = []string{
	"xinput1_4.dll",
	"xinput1_3.dll",
	"xinput1_2.dll",
	"xinput1_1.dll",
	"xinput9_1_0.dll",
}

type xinputLib struct {
	getState func(slot uint32, st *state) uintptr
	setState func(slot uint32, vib *vibration) uintptr
}

var lib *xinputLib

// load resolves the first loadable XInput DLL from [dllCandidates] and
// binds GetState/SetState. It is safe to call more than once; later calls
// after a successful load are no-ops.
func load() error {
	if lib != nil {
		return nil
	}

	var lastErr error

	for _, name := range dllCandidates {
		dll := windows.NewLazySystemDLL(name)
		if err := dll.Load(); err != nil {
			lastErr = err

			continue
		}

		getState := dll.NewProc("XInputGetState")
		setState := dll.NewProc("XInputSetState")

		if err := getState.Find(); err != nil {
			lastErr = err

			continue
		}

		if err := setState.Find(); err != nil {
			lastErr = err

			continue
		}

		lib = &xinputLib{
			getState: func(slot uint32, st *state) uintptr {
				r, _, _ := getState.Call(uintptr(slot), uintptr(unsafe.Pointer(st)))

				return r
			},
			setState: func(slot uint32, vib *vibration) uintptr {
				r, _, _ := setState.Call(uintptr(slot), uintptr(unsafe.Pointer(vib)))

				return r
			},
		}

		return nil
	}

	return fmt.Errorf("windows.load: no XInput DLL available: %w", lastErr)
}
