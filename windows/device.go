//go:build windows

package windows

import (
	"fmt"

	"github.com/corvid-io/padstream"
)

// xinputHardwareID is the HardwareID reported by every XInput slot: the
// API exposes no vendor/product identity (only a sub-type from
// GetCapabilities, which this backend doesn't call), so every XInput pad
// is treated as one device model and relies on the remap database's
// generic fallback profile.
const xinputHardwareID = padstream.HardwareID(0x5849 << 48)

// Device is one XInput slot (0..3) implementing [padstream.Port]. Unlike
// the Linux backend there is no OS readiness fd to block on; FD returns -1
// and the Controller falls back to a short poll interval, matching the
// ~100ms timer the Hotplug watch already uses for this platform.
type Device struct {
	slot uint32
	last state
}

var _ padstream.Port = (*Device)(nil)

func openSlot(slot uint32) (*Device, error) {
	if err := load(); err != nil {
		return nil, fmt.Errorf("windows.openSlot: %w", err)
	}

	var st state

	if rc := lib.getState(slot, &st); rc != 0 {
		return nil, padstream.ErrDisconnected
	}

	return &Device{slot: slot, last: st}, nil
}

// HardwareID reports [xinputHardwareID] for every slot.
func (d *Device) HardwareID() padstream.HardwareID {
	return xinputHardwareID
}

// Name reports a slot-qualified display name; XInput has no per-device
// string.
func (d *Device) Name() string {
	return fmt.Sprintf("XInput Controller %d", d.slot+1)
}

// FD returns -1: XInput has no readiness descriptor, so the Controller
// driving this Port falls back to short-interval polling instead of
// blocking on FD().
func (d *Device) FD() int {
	return -1
}

// Drain reads the current packet and diffs it against the last one seen,
// appending one abstract event per changed button or axis. Per spec,
// relative-motion axes don't apply to XInput; only the documented
// stick/trigger/button surface is produced.
func (d *Device) Drain(q *padstream.EventQueue) error {
	var cur state

	if rc := lib.getState(d.slot, &cur); rc != 0 {
		return padstream.ErrDisconnected
	}

	if cur.PacketNumber == d.last.PacketNumber {
		return padstream.ErrWouldBlock
	}

	prev := d.last
	d.last = cur

	if !padstream.Focused() {
		return nil
	}

	d.diffButtons(prev.Gamepad.Buttons, cur.Gamepad.Buttons, q)
	d.diffTriggers(prev.Gamepad, cur.Gamepad, q)
	d.diffSticks(prev.Gamepad, cur.Gamepad, q)

	return nil
}

var buttonBits = []struct {
	mask uint16
	kind padstream.Kind
}{
	{btnDPadUp, padstream.KindUp},
	{btnDPadDown, padstream.KindDown},
	{btnDPadLeft, padstream.KindLeft},
	{btnDPadRight, padstream.KindRight},
	{btnStart, padstream.KindMenuR},
	{btnBack, padstream.KindPaddleLeft},
	{btnLeftThumb, padstream.KindJoy},
	{btnRightThumb, padstream.KindCam},
	{btnLeftShoulder, padstream.KindBumperL},
	{btnRightShoulder, padstream.KindBumperR},
	{btnA, padstream.KindActionA},
	{btnB, padstream.KindActionB},
	{btnX, padstream.KindActionV},
	{btnY, padstream.KindActionH},
}

func (d *Device) diffButtons(prev, cur uint16, q *padstream.EventQueue) {
	for _, b := range buttonBits {
		wasPressed := prev&b.mask != 0
		isPressed := cur&b.mask != 0

		if wasPressed != isPressed {
			q.Push(padstream.Bool(b.kind, isPressed))
		}
	}
}

func (d *Device) diffTriggers(prev, cur gamepad, q *padstream.EventQueue) {
	if prev.LeftTrigger != cur.LeftTrigger {
		q.Push(padstream.Float(padstream.KindTriggerL, normalizeTrigger(cur.LeftTrigger)))
	}

	if prev.RightTrigger != cur.RightTrigger {
		q.Push(padstream.Float(padstream.KindTriggerR, normalizeTrigger(cur.RightTrigger)))
	}
}

func (d *Device) diffSticks(prev, cur gamepad, q *padstream.EventQueue) {
	if prev.ThumbLX != cur.ThumbLX {
		q.Push(padstream.Float(padstream.KindJoyX, normalizeStick(cur.ThumbLX, leftThumbDeadzone)))
	}

	if prev.ThumbLY != cur.ThumbLY {
		q.Push(padstream.Float(padstream.KindJoyY, normalizeStick(cur.ThumbLY, leftThumbDeadzone)))
	}

	if prev.ThumbRX != cur.ThumbRX {
		q.Push(padstream.Float(padstream.KindCamX, normalizeStick(cur.ThumbRX, rightThumbDeadzone)))
	}

	if prev.ThumbRY != cur.ThumbRY {
		q.Push(padstream.Float(padstream.KindCamY, normalizeStick(cur.ThumbRY, rightThumbDeadzone)))
	}
}

// normalizeStick maps a signed 16-bit XInput stick axis into [-1.0, 1.0],
// snapping to zero inside the documented deadzone, through the same
// calibration shape the Linux backend uses so both report identically for
// the same abstract axis.
func normalizeStick(raw int16, deadzone int32) float64 {
	cal := padstream.NewAxisCalibration(-32768, 32767, deadzone)

	return padstream.NormalizeAxis(int32(raw), cal)
}

// normalizeTrigger maps an unsigned 8-bit XInput trigger axis into
// [0.0, 1.0], snapping to zero below [triggerThreshold].
func normalizeTrigger(raw uint8) float64 {
	if raw < triggerThreshold {
		return 0
	}

	return float64(raw) / 0xff
}

// Rumble drives the whole-controller dual-motor vibration motors directly;
// XInput has no per-effect-id model to upload, so this simply writes the
// current motor speeds.
func (d *Device) Rumble(strong, weak float64) error {
	vib := vibration{
		LeftMotorSpeed:  uint16(strong * 0xffff),
		RightMotorSpeed: uint16(weak * 0xffff),
	}

	if rc := lib.setState(d.slot, &vib); rc != 0 {
		return padstream.ErrDisconnected
	}

	return nil
}

// Close is a no-op: XInput slots hold no OS handle to release.
func (d *Device) Close() error {
	return nil
}
