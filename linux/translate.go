//go:build linux

package linux

import (
	"log/slog"

	"github.com/corvid-io/padstream"
	"github.com/corvid-io/padstream/linux/internal/evcode"
)

// buttonKinds maps evdev BTN_*/KEY_* codes to abstract Kinds. Codes with no
// entry are logged and dropped, per spec's unknown-code policy; BTN_TL2/
// BTN_TR2 are handled separately by the caller since they synthesize float
// TriggerL/R events instead of a boolean.
var buttonKinds = map[uint16]padstream.Kind{
	evcode.BtnTrigger: padstream.KindTrigger,
	evcode.BtnThumb:   padstream.KindActionM,
	evcode.BtnThumb2:  padstream.KindBumper,
	evcode.BtnTop:     padstream.KindActionR,
	evcode.BtnTop2:    padstream.KindActionL,
	evcode.BtnPinkie:  padstream.KindPinky,
	evcode.BtnPinkyR:  padstream.KindPinkyRight,
	evcode.BtnPinkyL:  padstream.KindPinkyLeft,

	evcode.KeyBack:    padstream.KindPaddleLeft,
	evcode.KeyForward: padstream.KindPaddleRight,
}

// numberedButtons maps BTN_BASE1..10 and BTN_TRIGGER_HAPPY1..40 to the
// Number(1..50) indexed-boolean event, per spec's "base-N buttons (1…10
// and trigger-happy 1…40 extended to 11…50)".
var numberedButtons = map[uint16]int8{
	evcode.BtnBase1:  1,
	evcode.BtnBase1 + 1: 2,
	evcode.BtnBase1 + 2: 3,
	evcode.BtnBase1 + 3: 4,
	evcode.BtnBase1 + 4: 5,
	evcode.BtnBase1 + 5: 6,
	evcode.BtnBase1 + 6: 7,
	evcode.BtnBase1 + 7: 8,
	evcode.BtnBase1 + 8: 9,
	evcode.BtnBase10:    10,
}

func init() {
	for i := uint16(0); i < 40; i++ {
		numberedButtons[evcode.BtnTriggerHappy1+i] = int8(11 + i)
	}

	buttonKinds[evcode.BtnA] = padstream.KindActionA
	buttonKinds[evcode.BtnB] = padstream.KindActionB
	buttonKinds[evcode.BtnC] = padstream.KindActionC
	buttonKinds[evcode.BtnX] = padstream.KindActionV
	buttonKinds[evcode.BtnY] = padstream.KindActionH
	buttonKinds[evcode.BtnZ] = padstream.KindActionD
	buttonKinds[evcode.BtnTL] = padstream.KindBumperL
	buttonKinds[evcode.BtnTR] = padstream.KindBumperR
	buttonKinds[evcode.BtnSelect] = padstream.KindMenuL
	buttonKinds[evcode.BtnStart] = padstream.KindMenuR
	buttonKinds[evcode.BtnMode] = padstream.KindExit
	buttonKinds[evcode.BtnThumbL] = padstream.KindJoy
	buttonKinds[evcode.BtnThumbR] = padstream.KindCam
	buttonKinds[evcode.BtnDpadUp] = padstream.KindUp
	buttonKinds[evcode.BtnDpadDown] = padstream.KindDown
	buttonKinds[evcode.BtnDpadLeft] = padstream.KindLeft
	buttonKinds[evcode.BtnDpadRight] = padstream.KindRight
}

// absoluteKinds maps evdev ABS_* codes (excluding the HAT pairs, which have
// their own zero-crossing expansion) to abstract float Kinds.
var absoluteKinds = map[uint16]padstream.Kind{
	evcode.AbsX:         padstream.KindJoyX,
	evcode.AbsY:         padstream.KindJoyY,
	evcode.AbsZ:         padstream.KindJoyZ,
	evcode.AbsRX:        padstream.KindCamX,
	evcode.AbsRY:        padstream.KindCamY,
	evcode.AbsRZ:        padstream.KindCamZ,
	evcode.AbsThrottle:  padstream.KindThrottle,
	evcode.AbsRudder:    padstream.KindRudder,
	evcode.AbsWheel:     padstream.KindWheel,
	evcode.AbsGas:       padstream.KindGas,
	evcode.AbsBrake:     padstream.KindBrake,
	evcode.AbsSlew:      padstream.KindSlew,
	evcode.AbsThrottleL: padstream.KindThrottleL,
	evcode.AbsThrottleR: padstream.KindThrottleR,
	evcode.AbsScrollX:   padstream.KindScrollX,
	evcode.AbsScrollY:   padstream.KindScrollY,
}

// hatAxes maps an evdev HAT axis code to its (pair index, isY) coordinates
// in [padstream.HatTracker].
var hatAxes = map[uint16]struct {
	pair int
	isY  bool
}{
	evcode.AbsHat0X: {0, false},
	evcode.AbsHat0Y: {0, true},
	evcode.AbsHat1X: {1, false},
	evcode.AbsHat1Y: {1, true},
	evcode.AbsHat2X: {2, false},
	evcode.AbsHat2Y: {2, true},
	evcode.AbsHat3X: {3, false},
	evcode.AbsHat3Y: {3, true},
}

func translateButton(code uint16, value int32) (padstream.Event, bool) {
	pressed := value != 0

	switch code {
	case evcode.BtnTL2:
		return padstream.Float(padstream.KindTriggerL, boolFloat(pressed)), true
	case evcode.BtnTR2:
		return padstream.Float(padstream.KindTriggerR, boolFloat(pressed)), true
	}

	if n, ok := numberedButtons[code]; ok {
		return padstream.Number(n, pressed), true
	}

	if kind, ok := buttonKinds[code]; ok {
		return padstream.Bool(kind, pressed), true
	}

	slog.Warn("padstream/linux: unknown button code", "code", code, "hint", "report an issue with this device's name and bus id")

	return padstream.Event{}, false
}

func translateRelative(code uint16, value int32) (padstream.Event, bool) {
	switch code {
	case evcode.RelX:
		return padstream.Float(padstream.KindMouseX, float64(value)), true
	case evcode.RelY:
		return padstream.Float(padstream.KindMouseY, float64(value)), true
	}

	slog.Warn("padstream/linux: unknown relative axis code", "code", code, "hint", "report an issue with this device's name and bus id")

	return padstream.Event{}, false
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
