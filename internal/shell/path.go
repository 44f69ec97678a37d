package shell

import (
	"path/filepath"
	"strings"
)

// Resolve turns a user-supplied path into a normalized absolute path.
// A leading "~" expands to home, relative paths are joined to cwd, and
// "."/".." segments are collapsed. Pure string manipulation, no I/O.
func Resolve(path, cwd, home string) string {
	switch {
	case path == "~":
		path = home
	case strings.HasPrefix(path, "~/"):
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	return filepath.Clean(path)
}
