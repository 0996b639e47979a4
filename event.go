package padstream

import "fmt"

// Payload describes the shape of the value carried by an [Event].
type Payload uint8

const (
	// PayloadTerminal events carry no value (only [KindDisconnect]).
	PayloadTerminal Payload = iota
	// PayloadBool events carry a pressed/released or switch state in
	// [Event.Bool].
	PayloadBool
	// PayloadIndexedBool events carry a 1-based index in [Event.Index] in
	// addition to [Event.Bool] (only [KindNumber]).
	PayloadIndexedBool
	// PayloadUnitFloat events carry a value in [0.0, 1.0] in [Event.Float].
	PayloadUnitFloat
	// PayloadSignedFloat events carry a value in [-1.0, 1.0] in
	// [Event.Float].
	PayloadSignedFloat
)

// Kind is a member of the closed abstract/semantic event vocabulary. The
// same set of kinds is used both before remap (abstract events, as produced
// by the Normalizer) and after remap (semantic events, as delivered to the
// application) — remap only ever rewrites one Kind to another or tweaks its
// payload, it never invents a Kind outside this set.
type Kind uint16

const (
	KindDisconnect Kind = iota

	// W3C-style standard gamepad.
	KindExit
	KindMenuL
	KindMenuR
	KindActionA
	KindActionB
	KindActionC
	KindActionH
	KindActionV
	KindActionD
	KindUp
	KindDown
	KindLeft
	KindRight
	KindBumperL
	KindBumperR
	KindTriggerL
	KindTriggerR
	KindJoy
	KindCam
	KindJoyX
	KindJoyY
	KindJoyZ
	KindCamX
	KindCamY
	KindCamZ
	KindPaddleLeft
	KindPaddleRight
	KindPinkyLeft
	KindPinkyRight

	// Joystick (cars, boats).
	KindNumber
	KindWheel
	KindBrake
	KindGas
	KindRudder

	// Flightstick.
	KindTrigger
	KindHatUp
	KindHatDown
	KindHatLeft
	KindHatRight

	// Extended flight-sim switches and hats.
	KindAutopilotToggle
	KindLandingGearSilence
	KindPovUp
	KindPovDown
	KindPovLeft
	KindPovRight
	KindMicUp
	KindMicDown
	KindMicLeft
	KindMicRight
	KindMicPush
	KindSlew
	KindThrottle
	KindThrottleL
	KindThrottleR
	KindThrottleButtonL
	KindEngineFuelFlowL
	KindEngineFuelFlowR
	KindEac
	KindRadarAltimeter
	KindApu
	KindAutopilotPath
	KindAutopilotAlt
	KindFlapsUp
	KindFlapsDown
	KindEngineLIgnition
	KindEngineLMotor
	KindEngineRIgnition
	KindEngineRMotor
	KindPinkyForward
	KindPinkyBackward
	KindSpeedbrakeForward
	KindSpeedbrakeBackward
	KindBoatForward
	KindBoatBackward
	KindChinaForward
	KindChinaBackward

	// Trim hat, distinct from the primary hat/pov.
	KindTrimUp
	KindTrimDown
	KindTrimLeft
	KindTrimRight

	// Mice and mouse-like controllers.
	KindDpi
	KindMouseX
	KindMouseY
	KindMousePush
	KindMouseMenu
	KindScrollX
	KindScrollY
	KindWheelPush

	// Generic/secondary action and context rows used by non-gamepad
	// layouts (flightsticks, wheels) whose face buttons don't fit the
	// A/B/C/X/Y/Z vocabulary.
	KindContext
	KindBumper
	KindActionL
	KindActionM
	KindActionR
	KindPinky

	kindCount
)

var payloadOf = [kindCount]Payload{
	KindDisconnect: PayloadTerminal,
	KindNumber:     PayloadIndexedBool,

	KindTriggerL: PayloadUnitFloat,
	KindTriggerR: PayloadUnitFloat,
	KindThrottle: PayloadUnitFloat,
	KindThrottleL: PayloadUnitFloat,
	KindThrottleR: PayloadUnitFloat,
	KindGas:       PayloadUnitFloat,
	KindBrake:     PayloadUnitFloat,
	KindSlew:      PayloadUnitFloat,

	KindJoyX:    PayloadSignedFloat,
	KindJoyY:    PayloadSignedFloat,
	KindJoyZ:    PayloadSignedFloat,
	KindCamX:    PayloadSignedFloat,
	KindCamY:    PayloadSignedFloat,
	KindCamZ:    PayloadSignedFloat,
	KindWheel:   PayloadSignedFloat,
	KindRudder:  PayloadSignedFloat,
	KindMouseX:  PayloadSignedFloat,
	KindMouseY:  PayloadSignedFloat,
	KindScrollX: PayloadSignedFloat,
	KindScrollY: PayloadSignedFloat,
}

// Payload reports the value shape carried by events of this Kind. Kinds not
// listed explicitly above default to [PayloadBool].
func (k Kind) Payload() Payload {
	if k >= kindCount {
		return PayloadBool
	}

	if k == KindDisconnect || k == KindNumber {
		return payloadOf[k]
	}

	if p := payloadOf[k]; p != PayloadTerminal {
		return p
	}

	return PayloadBool
}

// Event is a single abstract or semantic event. Which fields are valid is
// determined by Kind.Payload(): [PayloadBool] and [PayloadIndexedBool] use
// Bool (and Index for the latter); [PayloadUnitFloat] and
// [PayloadSignedFloat] use Float.
type Event struct {
	Kind  Kind
	Bool  bool
	Float float64
	Index int8
}

// Disconnect is the terminal event delivered exactly once when a
// Controller's underlying device goes away.
var Disconnect = Event{Kind: KindDisconnect}

// Bool constructs a boolean-payload event.
func Bool(kind Kind, pressed bool) Event {
	return Event{Kind: kind, Bool: pressed}
}

// Float constructs a float-payload event. The caller is responsible for
// ensuring v already respects the Kind's declared range; [clamp] is
// available for callers that need to enforce it.
func Float(kind Kind, v float64) Event {
	return Event{Kind: kind, Float: v}
}

// Number constructs a [KindNumber] event for programmable button n
// (1..50).
func Number(n int8, pressed bool) Event {
	return Event{Kind: KindNumber, Index: n, Bool: pressed}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}

func (e Event) String() string {
	switch e.Kind.Payload() {
	case PayloadTerminal:
		return "Disconnect"
	case PayloadIndexedBool:
		return fmt.Sprintf("Number(%d, %t)", e.Index, e.Bool)
	case PayloadUnitFloat, PayloadSignedFloat:
		return fmt.Sprintf("%d(%g)", e.Kind, e.Float)
	default:
		return fmt.Sprintf("%d(%t)", e.Kind, e.Bool)
	}
}
