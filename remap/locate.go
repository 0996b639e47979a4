package remap

import (
	"fmt"

	"github.com/corvid-io/padstream/xdg"
)

// UserDatabasePath returns the per-user path of the compact remap database,
// creating its parent directory if needed. It does not require the file to
// already exist: a missing database is not an error anywhere in this
// package, per the "missing profile is not an error" rule — callers that
// find nothing here fall back to [NewDatabase]'s generic profile.
func UserDatabasePath() (string, error) {
	path, err := xdg.DataPath("padstream/gamecontrollerdb.bin")
	if err != nil {
		return "", fmt.Errorf("remap.UserDatabasePath: %w", err)
	}

	return path, nil
}
