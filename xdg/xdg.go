// Package xdg implements the subset of the [XDG Base Directory
// Specification] padstream needs to locate its on-disk remap database:
// resolving a file path under $XDG_DATA_HOME and creating its parent
// directories.
//
// [XDG Base Directory Specification]: https://specifications.freedesktop.org/basedir-spec/latest
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
)

func home() string {
	var home string

	home = os.Getenv("HOME")
	if home == "" {
		return "/"
	}

	return home
}

func xdg(env string, subPaths ...string) string {
	env = os.Getenv(env)
	if env == "" || !filepath.IsAbs(env) {
		env = filepath.Join(subPaths...)
	}

	return env
}

// DataPath resolves a relative path (e.g. "padstream/gamecontrollerdb.bin")
// against the base data directory, creating any missing parent directories.
// It does not open or create the file itself.
//
// From the [XDG Base Directory Specification]:
//
// $XDG_DATA_HOME defines the base directory relative to which user-specific
// data files should be stored. If $XDG_DATA_HOME is either not set or empty,
// a default equal to $HOME/.local/share should be used.
//
// [XDG Base Directory Specification]: https://specifications.freedesktop.org/basedir-spec/latest
func DataPath(relPath string) (string, error) {
	const userOnly os.FileMode = 0o700

	var (
		base string
		path string
		err  error
	)

	base = xdg("XDG_DATA_HOME", home(), ".local/share")
	path = filepath.Join(base, relPath)

	err = os.MkdirAll(filepath.Dir(path), userOnly)
	if err != nil {
		return "", fmt.Errorf("xdg.DataPath: %w", err)
	}

	return path, nil
}
