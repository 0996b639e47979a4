//go:build windows

package padstream

import (
	"context"
	"time"
)

// pollInterval matches the ~100ms timer the Windows hotplug watch already
// uses: XInput has no readiness descriptor, so a Device's FD() is always
// -1 and waiting for "readiness" just means waiting out the next tick.
const pollInterval = 100 * time.Millisecond

// waitReadable suspends for one poll tick or until ctx is done, whichever
// comes first. fd is ignored: the Windows backend's Device and Hotplug
// both report FD() == -1, since XInput has no readiness descriptor.
func waitReadable(ctx context.Context, fd int) error {
	timer := time.NewTimer(pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
