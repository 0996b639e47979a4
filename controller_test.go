package padstream_test

import (
	"context"
	"testing"

	"github.com/corvid-io/padstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePort feeds a scripted sequence of events to Drain, one per call, and
// reports ErrDisconnected once the script is exhausted.
type fakePort struct {
	id     padstream.HardwareID
	name   string
	events []padstream.Event
	pos    int
	closed bool

	strong, weak float64 // last values passed to Rumble
}

func (p *fakePort) Drain(q *padstream.EventQueue) error {
	if p.pos >= len(p.events) {
		return padstream.ErrDisconnected
	}

	q.Push(p.events[p.pos])
	p.pos++

	return nil
}

func (p *fakePort) FD() int                        { return -1 }
func (p *fakePort) Rumble(s, w float64) error       { p.strong, p.weak = s, w; return nil }
func (p *fakePort) Close() error                    { p.closed = true; return nil }
func (p *fakePort) HardwareID() padstream.HardwareID { return p.id }
func (p *fakePort) Name() string                    { return p.name }

var _ padstream.Port = (*fakePort)(nil)

// fakeHotplug hands back a fixed list of already-enumerated ports and then
// blocks forever (ErrWouldBlock), matching S5's "two existing devices"
// scenario.
type fakeHotplug struct {
	ports  []padstream.Port
	closed bool
}

func (h *fakeHotplug) Enumerate() ([]padstream.Port, error) { return h.ports, nil }
func (h *fakeHotplug) FD() int                              { return -1 }
func (h *fakeHotplug) Next() (padstream.Port, error)        { return nil, padstream.ErrWouldBlock }
func (h *fakeHotplug) Close() error                         { h.closed = true; return nil }

var _ padstream.Hotplug = (*fakeHotplug)(nil)

// S1 — Gamepad face button.
func TestControllerFaceButton(t *testing.T) {
	port := &fakePort{events: []padstream.Event{
		padstream.Bool(padstream.KindActionA, true),
		padstream.Bool(padstream.KindActionA, false),
	}}
	connector := padstream.NewConnector(&fakeHotplug{ports: []padstream.Port{port}})

	ctrl, ok, err := connector.TryConnect()
	require.NoError(t, err)
	require.True(t, ok)

	ev, ok, err := ctrl.TryPoll()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, padstream.Bool(padstream.KindActionA, true), ev)

	ev, ok, err = ctrl.TryPoll()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, padstream.Bool(padstream.KindActionA, false), ev)
}

// Terminal invariant: every finite trace ends with Disconnect.
func TestControllerEndsWithDisconnect(t *testing.T) {
	port := &fakePort{events: []padstream.Event{padstream.Bool(padstream.KindActionA, true)}}
	ctrl, ok, err := padstream.NewConnector(&fakeHotplug{ports: []padstream.Port{port}}).TryConnect()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = ctrl.TryPoll()
	require.NoError(t, err)
	require.True(t, ok)

	ev, err := ctrl.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, padstream.Disconnect, ev)

	_, err = ctrl.Poll(context.Background())
	assert.ErrorIs(t, err, padstream.ErrClosed)
}

// S5 — Hotplug enumeration: both pre-existing devices are delivered before
// any subsequent plug, in FIFO order.
func TestConnectorEnumeratesExisting(t *testing.T) {
	a := &fakePort{id: padstream.NewHardwareID(1, 1, 1, 1)}
	b := &fakePort{id: padstream.NewHardwareID(1, 2, 2, 1)}
	connector := padstream.NewConnector(&fakeHotplug{ports: []padstream.Port{a, b}})

	first, ok, err := connector.TryConnect()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, a.id, first.ID())

	second, ok, err := connector.TryConnect()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b.id, second.ID())

	_, ok, err = connector.TryConnect()
	require.NoError(t, err)
	assert.False(t, ok)
}

// S7 — Remap with scale+invert.
func TestControllerRemapScaleInvert(t *testing.T) {
	port := &fakePort{events: []padstream.Event{padstream.Float(padstream.KindJoyY, 0.8)}}

	remapper := fakeRemapper{fn: func(_ padstream.HardwareID, ev padstream.Event) (padstream.Event, bool) {
		if ev.Kind != padstream.KindJoyY {
			return ev, true
		}

		return padstream.Float(padstream.KindJoyY, -ev.Float*0.5), true
	}}

	connector := padstream.NewConnector(&fakeHotplug{ports: []padstream.Port{port}}, padstream.WithRemapper(remapper))

	ctrl, ok, err := connector.TryConnect()
	require.NoError(t, err)
	require.True(t, ok)

	ev, ok, err := ctrl.TryPoll()
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, -0.4, ev.Float, 0.0001)
}

type fakeRemapper struct {
	fn func(padstream.HardwareID, padstream.Event) (padstream.Event, bool)
}

func (r fakeRemapper) Rewrite(id padstream.HardwareID, ev padstream.Event) (padstream.Event, bool) {
	return r.fn(id, ev)
}

// focusGatedPort mimics a real backend: it always "reads" a record (pos
// advances regardless of focus) but only pushes an abstract event when the
// focus gate is enabled, per spec.md §4.2's drain-without-emit rule.
type focusGatedPort struct {
	fakePort
}

func (p *focusGatedPort) Drain(q *padstream.EventQueue) error {
	if p.pos >= len(p.events) {
		return padstream.ErrDisconnected
	}

	ev := p.events[p.pos]
	p.pos++

	if padstream.Focused() {
		q.Push(ev)
	}

	return nil
}

// S6 — Focus gate: stale events fed while unfocused never reach the
// application, even after focus is re-enabled.
func TestControllerFocusGateSuppressesStaleEvents(t *testing.T) {
	padstream.Unfocus()
	t.Cleanup(padstream.Focus)

	events := make([]padstream.Event, 0, 21)
	for i := 0; i < 20; i++ {
		events = append(events, padstream.Bool(padstream.KindUp, true))
	}

	events = append(events, padstream.Bool(padstream.KindActionA, true))

	port := &focusGatedPort{fakePort{events: events}}
	ctrl, ok, err := padstream.NewConnector(&fakeHotplug{ports: []padstream.Port{port}}).TryConnect()
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 20; i++ {
		_, ok, err := ctrl.TryPoll()
		require.NoError(t, err)
		assert.False(t, ok)
	}

	padstream.Focus()

	ev, ok, err := ctrl.TryPoll()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, padstream.Bool(padstream.KindActionA, true), ev)
}

func TestControllerRumbleClampsSilently(t *testing.T) {
	port := &fakePort{}
	ctrl, ok, err := padstream.NewConnector(&fakeHotplug{ports: []padstream.Port{port}}).TryConnect()
	require.NoError(t, err)
	require.True(t, ok)

	assert.NoError(t, ctrl.Rumble(5))
	assert.Equal(t, 1.0, port.strong)
	assert.Equal(t, 1.0, port.weak)

	assert.NoError(t, ctrl.RumbleLR(-1, 2))
	assert.Equal(t, 0.0, port.strong)
	assert.Equal(t, 1.0, port.weak)
}
