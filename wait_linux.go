//go:build linux

package padstream

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// pollInterval bounds how long a single poll(2) call blocks before
// re-checking ctx, so cancellation latency never exceeds this even though
// poll(2) itself has no way to also wait on a Go context.
const pollInterval = 50

// waitReadable suspends until fd becomes readable or ctx is done. This is
// the Linux realization of §5's "register a waker with the platform port's
// OS readiness primitive and suspend".
func waitReadable(ctx context.Context, fd int) error {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if err == unix.EINTR {
				continue
			}

			return fmt.Errorf("waitReadable: %w", err)
		}

		if n > 0 {
			return nil
		}
	}
}
