package padstream

// AxisCalibration describes the raw-value range and deadzone of one
// absolute axis, plus the derived constants the Normalizer uses to map raw
// values into [-1.0, 1.0] (or [0.0, 1.0] for unit-range axes).
type AxisCalibration struct {
	Min, Max int32
	FlatRaw  int32

	norm float64
	zero float64
}

// NewAxisCalibration precomputes the normalizer and zero-point for a raw
// axis range, per spec: norm = 2/(max-min), zero = min + range/2.
func NewAxisCalibration(min, max, flatRaw int32) AxisCalibration {
	var c AxisCalibration

	c.Min, c.Max, c.FlatRaw = min, max, flatRaw
	if max != min {
		c.norm = 2 / float64(max-min)
	}
	c.zero = float64(min) + float64(max-min)/2

	return c
}

// NormalizeAxis maps a raw axis value into its calibrated float range,
// snapping to exactly 0.0 inside the deadzone. This is the single place
// both backends compute this, so the "|normalize(v)| <= deadzone implies
// 0.0 exactly" invariant holds by construction for backend output; the
// remap engine's "deadzone" tweak applies its own check with the same
// inclusive boundary.
func NormalizeAxis(raw int32, cal AxisCalibration) float64 {
	f := (float64(raw) - cal.zero) * cal.norm
	if cal.FlatRaw > 0 {
		flat := float64(cal.FlatRaw) * cal.norm
		if f >= -flat && f <= flat {
			return 0
		}
	}

	return f
}

// Port is the OS-specific contract a backend (padstream/linux,
// padstream/windows) implements for one open controller handle. The core
// depends only on this interface; backend selection is a compile-time
// build-tag switch, never a runtime dispatch inside the core.
//
// Draining and translation (components A and B) are necessarily combined in
// one method here: a raw evdev (type, code, value) triple or an XInput
// packet diff can only be turned into abstract events by code that also
// knows the platform's raw-code table, so that table travels with the
// backend that owns it. The backend calls back into this package's shared
// NormalizeAxis and EventQueue helpers to do so, keeping the actual
// deadzone/scale math defined exactly once.
type Port interface {
	// Drain reads at most one raw record and, if it decodes to one or more
	// abstract events, pushes them onto q in order. With nothing available
	// it returns ErrWouldBlock and leaves q untouched. A gone device
	// returns ErrDisconnected. There is no retry loop inside Drain — the
	// caller (Controller.Poll) is driven off FD readiness.
	Drain(q *EventQueue) error

	// FD returns the readiness descriptor to watch (epoll/poll(2) target).
	FD() int

	// Rumble sends a haptic command. strong and weak are already clamped to
	// [0.0, 1.0] by the caller. A backend with no haptic support treats
	// this as a no-op, never an error.
	Rumble(strong, weak float64) error

	// Close releases OS resources. It must be idempotent.
	Close() error

	HardwareID() HardwareID
	Name() string
}

// Hotplug is the OS-specific contract for discovering new controllers: an
// initial enumeration pass plus a readiness-driven watch for later
// plug events.
type Hotplug interface {
	// Enumerate returns every controller already present on the bus.
	Enumerate() ([]Port, error)

	// FD returns the readiness descriptor for the hotplug watch.
	FD() int

	// Next returns one newly announced Port, or ErrWouldBlock if the watch
	// has nothing pending right now.
	Next() (Port, error)

	// Close deregisters the watch.
	Close() error
}
