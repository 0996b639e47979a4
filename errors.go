package padstream

import "errors"

// ErrWouldBlock is returned by a [Port] or [Hotplug] when no data is
// currently available; the caller should wait for the readiness fd and
// retry. It is never returned to application code from [Controller.Poll] or
// [Connector.Connect] — those block (or return false) internally instead.
var ErrWouldBlock = errors.New("padstream: would block")

// ErrDisconnected is returned by a [Port] when the underlying OS handle has
// gone away. The Controller surfaces this once as a [Disconnect] event.
var ErrDisconnected = errors.New("padstream: controller disconnected")

// ErrClosed is returned by operations on a Controller or Connector that has
// already been closed.
var ErrClosed = errors.New("padstream: already closed")

// InvariantError marks an OS-invariant violation the backend relies on
// (e.g. an ioctl documented as infallible failing anyway). These are bugs,
// not expected runtime conditions; code that wants to fail hard can let
// them panic, code that wants to recover in a test harness can
// [errors.As] for this type.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "padstream: invariant violated: " + e.Msg
}

func invariant(cond bool, msg string) {
	if !cond {
		panic(&InvariantError{Msg: msg})
	}
}
