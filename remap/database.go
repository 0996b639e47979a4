package remap

import "github.com/corvid-io/padstream"

// Database is the full set of loaded profiles, keyed by [padstream.HardwareID].
// It is built once (by [Load] or [NewDatabase]) and never mutated afterward,
// so it needs no locking to share across controllers.
type Database struct {
	profiles map[padstream.HardwareID]*Profile
}

// NewDatabase returns a Database containing only the generic identity
// profile bound to HardwareID 0, the fallback every lookup ultimately
// resolves to.
func NewDatabase() *Database {
	return &Database{
		profiles: map[padstream.HardwareID]*Profile{
			0: NewProfile("generic", TypeGamepad),
		},
	}
}

// Add installs profile for id, replacing any existing profile for that id.
func (d *Database) Add(id padstream.HardwareID, profile *Profile) {
	if d.profiles == nil {
		d.profiles = make(map[padstream.HardwareID]*Profile)
	}

	d.profiles[id] = profile
}

// Rewrite is the Remap Database's sole operation: it maps one abstract
// event from the device identified by id to a semantic event, or reports
// ok = false when the profile drops it. A device with no profile of its own
// falls back to the generic profile bound to HardwareID 0.
func (d *Database) Rewrite(id padstream.HardwareID, ev padstream.Event) (padstream.Event, bool) {
	profile, found := d.profiles[id]
	if !found {
		profile, found = d.profiles[0]
		if !found {
			return ev, true
		}
	}

	return profile.Rewrite(ev)
}
