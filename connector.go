package padstream

import (
	"context"
	"errors"
	"fmt"
)

// Connector owns the hotplug watch for the lifetime of the program and
// produces independent Controller handles: it never retains a reference to
// one after returning it.
type Connector struct {
	hotplug    Hotplug
	remap      Remapper
	pending    []Port
	enumerated bool
	closed     bool
}

// NewConnector wraps an already-open platform Hotplug watch (built by
// padstream/linux.NewHotplug or padstream/windows.NewHotplug, per the
// compile-time backend selection described in §9).
func NewConnector(hotplug Hotplug, opts ...Option) *Connector {
	c := &Connector{hotplug: hotplug, remap: identityRemapper{}}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Connect blocks until a Controller is available or ctx is done.
func (c *Connector) Connect(ctx context.Context) (*Controller, error) {
	for {
		ctrl, ok, err := c.TryConnect()
		if err != nil {
			return nil, err
		}

		if ok {
			return ctrl, nil
		}

		if err := waitReadable(ctx, c.hotplug.FD()); err != nil {
			return nil, fmt.Errorf("Connector.Connect: %w", err)
		}
	}
}

// TryConnect is the non-blocking connect algorithm: on first call it
// enumerates every device already present and queues them; thereafter it
// drains that queue in FIFO order before checking the hotplug watch for
// one newly announced device.
func (c *Connector) TryConnect() (ctrl *Controller, ok bool, err error) {
	if c.closed {
		return nil, false, ErrClosed
	}

	if !c.enumerated {
		c.enumerated = true

		ports, err := c.hotplug.Enumerate()
		if err != nil {
			return nil, false, fmt.Errorf("Connector.TryConnect: %w", err)
		}

		c.pending = append(c.pending, ports...)
	}

	if len(c.pending) > 0 {
		port := c.pending[0]
		c.pending = c.pending[1:]

		return newController(port, c.remap), true, nil
	}

	port, err := c.hotplug.Next()
	if err != nil {
		if errors.Is(err, ErrWouldBlock) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("Connector.TryConnect: %w", err)
	}

	return newController(port, c.remap), true, nil
}

// Close deregisters the hotplug watch. It is idempotent.
func (c *Connector) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true

	if err := c.hotplug.Close(); err != nil {
		return fmt.Errorf("Connector.Close: %w", err)
	}

	return nil
}
