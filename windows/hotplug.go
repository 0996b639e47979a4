//go:build windows

package windows

import (
	"fmt"

	"github.com/corvid-io/padstream"
)

const slotCount = 4

// Hotplug rotates through the 4 XInput slots on each call to [Hotplug.Next],
// since XInput exposes no event-driven plug notification. The Connector
// driving this watch is expected to call Next on its own ~100ms timer
// instead of blocking on FD(), which returns -1 here for the same reason
// [Device.FD] does.
type Hotplug struct {
	present [slotCount]bool
	cursor  uint32
}

var _ padstream.Hotplug = (*Hotplug)(nil)

// NewHotplug resolves the XInput DLL and returns a ready watch.
func NewHotplug() (*Hotplug, error) {
	if err := load(); err != nil {
		return nil, fmt.Errorf("windows.NewHotplug: %w", err)
	}

	return &Hotplug{}, nil
}

// Enumerate opens every slot that currently reports a connected controller.
func (h *Hotplug) Enumerate() ([]padstream.Port, error) {
	ports := make([]padstream.Port, 0, slotCount)

	for slot := uint32(0); slot < slotCount; slot++ {
		dev, err := openSlot(slot)
		if err != nil {
			continue
		}

		h.present[slot] = true
		ports = append(ports, dev)
	}

	return ports, nil
}

// FD returns -1; see the Hotplug doc comment.
func (h *Hotplug) FD() int {
	return -1
}

// Next checks one slot per call, advancing the cursor round-robin, and
// returns a newly connected Device the first time a previously-empty slot
// reports success. Callers drive this off a timer rather than FD
// readiness.
func (h *Hotplug) Next() (padstream.Port, error) {
	for i := 0; i < slotCount; i++ {
		slot := h.cursor
		h.cursor = (h.cursor + 1) % slotCount

		if h.present[slot] {
			continue
		}

		dev, err := openSlot(slot)
		if err != nil {
			continue
		}

		h.present[slot] = true

		return dev, nil
	}

	return nil, padstream.ErrWouldBlock
}

// Close is a no-op: the watch holds no OS handle, only in-process state.
func (h *Hotplug) Close() error {
	return nil
}
