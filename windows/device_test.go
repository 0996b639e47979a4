//go:build windows

package windows

import (
	"testing"

	"github.com/corvid-io/padstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTriggerBelowThresholdSnapsToZero(t *testing.T) {
	assert.Equal(t, 0.0, normalizeTrigger(triggerThreshold-1))
}

func TestNormalizeTriggerFullScale(t *testing.T) {
	assert.Equal(t, 1.0, normalizeTrigger(0xff))
}

// S2-equivalent on the Windows stick axis: in-deadzone raw values normalize
// to exactly 0.0.
func TestNormalizeStickDeadzone(t *testing.T) {
	assert.Equal(t, 0.0, normalizeStick(leftThumbDeadzone-100, leftThumbDeadzone))
}

func TestNormalizeStickFullDeflection(t *testing.T) {
	assert.InDelta(t, 1.0, normalizeStick(32767, leftThumbDeadzone), 0.001)
}

func TestDiffButtonsEmitsOnlyChangedBits(t *testing.T) {
	var q padstream.EventQueue
	d := &Device{}

	d.diffButtons(0, btnA, &q)

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, padstream.Bool(padstream.KindActionA, true), ev)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestDiffTriggersEmitsOnChange(t *testing.T) {
	var q padstream.EventQueue
	d := &Device{}

	d.diffTriggers(gamepad{LeftTrigger: 0}, gamepad{LeftTrigger: 0xff}, &q)

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, padstream.Float(padstream.KindTriggerL, 1.0), ev)
}

func TestDiffSticksEmitsOnChange(t *testing.T) {
	var q padstream.EventQueue
	d := &Device{}

	d.diffSticks(gamepad{ThumbLX: 0}, gamepad{ThumbLX: 32767}, &q)

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, padstream.KindJoyX, ev.Kind)
	assert.InDelta(t, 1.0, ev.Float, 0.001)
}
