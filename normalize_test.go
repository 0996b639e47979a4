package padstream_test

import (
	"testing"

	"github.com/corvid-io/padstream"
	"github.com/stretchr/testify/assert"
)

// S2 — Joystick axis + deadzone.
func TestNormalizeAxisDeadzone(t *testing.T) {
	cal := padstream.NewAxisCalibration(-32768, 32767, 1000)

	assert.Equal(t, 0.0, padstream.NormalizeAxis(500, cal))
	assert.InDelta(t, 0.5, padstream.NormalizeAxis(16384, cal), 0.001)
}

// Universal invariant: |normalize(v)| <= deadzone implies exactly 0.0.
func TestNormalizeAxisSnapsExactlyToZero(t *testing.T) {
	cal := padstream.NewAxisCalibration(-1000, 1000, 50)

	for _, raw := range []int32{-50, -10, 0, 10, 50} {
		assert.Equal(t, 0.0, padstream.NormalizeAxis(raw, cal))
	}
}

// S3 — Hat crossing zero: primary event immediately, then both release
// events in order on the next two polls, before any new record.
func TestHatTrackerCrossingZero(t *testing.T) {
	var (
		tracker padstream.HatTracker
		queue   padstream.EventQueue
	)

	tracker.Update(0, false, 1, &queue)
	ev, ok := queue.Pop()
	assert.True(t, ok)
	assert.Equal(t, padstream.Bool(padstream.KindPovRight, true), ev)

	_, ok = queue.Pop()
	assert.False(t, ok)

	tracker.Update(0, false, 0, &queue)

	ev, ok = queue.Pop()
	assert.True(t, ok)
	assert.Equal(t, padstream.Bool(padstream.KindPovRight, false), ev)

	ev, ok = queue.Pop()
	assert.True(t, ok)
	assert.Equal(t, padstream.Bool(padstream.KindPovLeft, false), ev)

	_, ok = queue.Pop()
	assert.False(t, ok)
}

func TestHatTrackerNegativeCrossingZero(t *testing.T) {
	var (
		tracker padstream.HatTracker
		queue   padstream.EventQueue
	)

	tracker.Update(0, true, -1, &queue)
	ev, _ := queue.Pop()
	assert.Equal(t, padstream.Bool(padstream.KindPovUp, true), ev)

	tracker.Update(0, true, 0, &queue)

	ev, _ = queue.Pop()
	assert.Equal(t, padstream.Bool(padstream.KindPovUp, false), ev)

	ev, _ = queue.Pop()
	assert.Equal(t, padstream.Bool(padstream.KindPovDown, false), ev)
}

func TestHatTrackerNoEventAtRestingZero(t *testing.T) {
	var (
		tracker padstream.HatTracker
		queue   padstream.EventQueue
	)

	tracker.Update(0, false, 0, &queue)
	assert.Zero(t, queue.Len())
}

func TestEventQueueFIFO(t *testing.T) {
	var queue padstream.EventQueue

	queue.Push(padstream.Bool(padstream.KindUp, true))
	queue.Push(padstream.Bool(padstream.KindDown, true))

	first, ok := queue.Pop()
	assert.True(t, ok)
	assert.Equal(t, padstream.KindUp, first.Kind)

	second, ok := queue.Pop()
	assert.True(t, ok)
	assert.Equal(t, padstream.KindDown, second.Kind)
}
