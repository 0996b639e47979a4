package padstream

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Remapper rewrites an abstract event into a semantic one for a given
// device model, or reports that the event should be dropped. It is
// satisfied by *remap.Database without this package importing the remap
// package, avoiding a dependency cycle (remap imports padstream for the
// Event/Kind/HardwareID types the database rewrites).
type Remapper interface {
	Rewrite(id HardwareID, ev Event) (Event, bool)
}

// identityRemapper is the default Remapper a Controller gets when the
// Connector that produced it was built with no remap database: every
// event passes through unchanged.
type identityRemapper struct{}

func (identityRemapper) Rewrite(_ HardwareID, ev Event) (Event, bool) {
	return ev, true
}

// Controller is one open physical device. It is not safe to call Poll
// concurrently from two goroutines on the same Controller; per §5 the
// core adds no locking beyond what a single owner already implies.
type Controller struct {
	port    Port
	remap   Remapper
	queue   EventQueue
	done    bool
	cleanup runtime.Cleanup
}

func newController(port Port, remap Remapper) *Controller {
	c := &Controller{port: port, remap: remap}
	c.cleanup = runtime.AddCleanup(c, func(p Port) { p.Close() }, port)

	return c
}

// ID reports the Controller's stable HardwareID.
func (c *Controller) ID() HardwareID {
	return c.port.HardwareID()
}

// Name reports the Controller's display name.
func (c *Controller) Name() string {
	return c.port.Name()
}

// Poll blocks until one semantic event is available or ctx is done. It
// guarantees exactly one event per successful call, strict FIFO delivery,
// and never busy-loops on an empty device.
func (c *Controller) Poll(ctx context.Context) (Event, error) {
	for {
		ev, ok, err := c.TryPoll()
		if err != nil {
			return Event{}, err
		}

		if ok {
			return ev, nil
		}

		if err := waitReadable(ctx, c.port.FD()); err != nil {
			return Event{}, fmt.Errorf("Controller.Poll: %w", err)
		}
	}
}

// TryPoll is the non-blocking 4-step poll algorithm: pop a pending event
// if one is already queued, otherwise read and translate one raw record.
// ok is false when nothing is available right now (the caller should wait
// on [Port.FD] and retry), never when err is non-nil.
func (c *Controller) TryPoll() (ev Event, ok bool, err error) {
	if c.done {
		return Event{}, false, ErrClosed
	}

	if ev, ok := c.popRewritten(); ok {
		return ev, true, nil
	}

	err = c.port.Drain(&c.queue)
	if err != nil {
		switch {
		case errors.Is(err, ErrWouldBlock):
			return Event{}, false, nil
		case errors.Is(err, ErrDisconnected):
			c.done = true

			return Disconnect, true, nil
		default:
			return Event{}, false, fmt.Errorf("Controller.TryPoll: %w", err)
		}
	}

	if ev, ok := c.popRewritten(); ok {
		return ev, true, nil
	}

	return Event{}, false, nil
}

// popRewritten pops and rewrites queued raw events until one survives the
// remap ("event = None" drop rules don't count as no-progress) or the
// queue is empty. A drop must never surface as would-block: anything
// still queued behind it (e.g. a hat's mirror release, normalize.go) has
// to be drained in the same call, or it would be stranded until the next
// raw record happens to arrive.
func (c *Controller) popRewritten() (Event, bool) {
	for {
		raw, popped := c.queue.Pop()
		if !popped {
			return Event{}, false
		}

		if ev, ok := c.remap.Rewrite(c.port.HardwareID(), raw); ok {
			return ev, true
		}
	}
}

// Rumble drives a single-motor rumble at power, clamped silently to
// [0.0, 1.0].
func (c *Controller) Rumble(power float64) error {
	return c.RumbleLR(power, power)
}

// RumbleLR drives the two-motor variant; left and right are clamped
// silently to [0.0, 1.0].
func (c *Controller) RumbleLR(left, right float64) error {
	if c.done {
		return nil
	}

	if err := c.port.Rumble(clamp(left, 0, 1), clamp(right, 0, 1)); err != nil {
		return fmt.Errorf("Controller.RumbleLR: %w", err)
	}

	return nil
}

// Close releases the OS handle, also after Disconnect has been delivered.
// It is idempotent (it relies on [Port.Close] being idempotent) and also
// runs automatically, as a backstop, if the Controller is
// garbage-collected without being closed.
func (c *Controller) Close() error {
	c.done = true
	c.cleanup.Stop()

	if err := c.port.Close(); err != nil {
		return fmt.Errorf("Controller.Close: %w", err)
	}

	return nil
}
