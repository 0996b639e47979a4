// Package remap implements the Remap Database: a read-only, per-device-model
// table of event tweaks loaded once from the compact on-disk format and
// consulted by every Controller to turn abstract events into semantic ones.
package remap

import "github.com/corvid-io/padstream"

// orderedKinds lists every padstream.Kind in the order the compact database
// format allocates codes for them: 0x00 is reserved for None/drop, and each
// Kind below takes the next code in sequence. This order must never change
// once a database has been written with it — it is the on-disk wire format.
var orderedKinds = []padstream.Kind{
	padstream.KindDisconnect,

	padstream.KindExit,
	padstream.KindMenuL,
	padstream.KindMenuR,
	padstream.KindActionA,
	padstream.KindActionB,
	padstream.KindActionC,
	padstream.KindActionH,
	padstream.KindActionV,
	padstream.KindActionD,
	padstream.KindUp,
	padstream.KindDown,
	padstream.KindLeft,
	padstream.KindRight,
	padstream.KindBumperL,
	padstream.KindBumperR,
	padstream.KindTriggerL,
	padstream.KindTriggerR,
	padstream.KindJoy,
	padstream.KindCam,
	padstream.KindJoyX,
	padstream.KindJoyY,
	padstream.KindJoyZ,
	padstream.KindCamX,
	padstream.KindCamY,
	padstream.KindCamZ,
	padstream.KindPaddleLeft,
	padstream.KindPaddleRight,
	padstream.KindPinkyLeft,
	padstream.KindPinkyRight,

	padstream.KindNumber,
	padstream.KindWheel,
	padstream.KindBrake,
	padstream.KindGas,
	padstream.KindRudder,

	padstream.KindTrigger,
	padstream.KindHatUp,
	padstream.KindHatDown,
	padstream.KindHatLeft,
	padstream.KindHatRight,

	padstream.KindAutopilotToggle,
	padstream.KindLandingGearSilence,
	padstream.KindPovUp,
	padstream.KindPovDown,
	padstream.KindPovLeft,
	padstream.KindPovRight,
	padstream.KindMicUp,
	padstream.KindMicDown,
	padstream.KindMicLeft,
	padstream.KindMicRight,
	padstream.KindMicPush,
	padstream.KindSlew,
	padstream.KindThrottle,
	padstream.KindThrottleL,
	padstream.KindThrottleR,
	padstream.KindThrottleButtonL,
	padstream.KindEngineFuelFlowL,
	padstream.KindEngineFuelFlowR,
	padstream.KindEac,
	padstream.KindRadarAltimeter,
	padstream.KindApu,
	padstream.KindAutopilotPath,
	padstream.KindAutopilotAlt,
	padstream.KindFlapsUp,
	padstream.KindFlapsDown,
	padstream.KindEngineLIgnition,
	padstream.KindEngineLMotor,
	padstream.KindEngineRIgnition,
	padstream.KindEngineRMotor,
	padstream.KindPinkyForward,
	padstream.KindPinkyBackward,
	padstream.KindSpeedbrakeForward,
	padstream.KindSpeedbrakeBackward,
	padstream.KindBoatForward,
	padstream.KindBoatBackward,
	padstream.KindChinaForward,
	padstream.KindChinaBackward,

	padstream.KindTrimUp,
	padstream.KindTrimDown,
	padstream.KindTrimLeft,
	padstream.KindTrimRight,

	padstream.KindDpi,
	padstream.KindMouseX,
	padstream.KindMouseY,
	padstream.KindMousePush,
	padstream.KindMouseMenu,
	padstream.KindScrollX,
	padstream.KindScrollY,
	padstream.KindWheelPush,

	padstream.KindContext,
	padstream.KindBumper,
	padstream.KindActionL,
	padstream.KindActionM,
	padstream.KindActionR,
	padstream.KindPinky,
}

// codeNone is the compact format's drop marker: a tweak targeting this code
// has event = None.
const codeNone uint8 = 0x00

var (
	codeForKind map[padstream.Kind]uint8
	kindForCode map[uint8]padstream.Kind
)

func init() {
	codeForKind = make(map[padstream.Kind]uint8, len(orderedKinds))
	kindForCode = make(map[uint8]padstream.Kind, len(orderedKinds))

	for i, k := range orderedKinds {
		code := uint8(i + 1)
		codeForKind[k] = code
		kindForCode[code] = k
	}
}
