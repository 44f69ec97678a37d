package builtin

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Mv moves each source into the destination. With multiple sources the
// destination must already be a directory; that check runs before any
// file is touched. Per-source failures are collected without aborting
// the remaining sources.
func Mv(env *Env, args []string) (int, error) {
	if len(args) < 2 {
		return 0, errors.New("missing file operand")
	}

	vfs := env.Session.FS()
	sources := args[:len(args)-1]
	dest := env.Session.Resolve(args[len(args)-1])

	destInfo, err := vfs.Stat(dest)
	destIsDir := err == nil && destInfo.IsDir()
	if len(sources) > 1 && !destIsDir {
		fmt.Fprint(env.Out, "mv: target directory does not exist")
		return 1, nil
	}

	var lines []string
	anyFailed := false
	for _, src := range sources {
		resolved := env.Session.Resolve(src)

		final := dest
		if destIsDir {
			final = filepath.Join(dest, filepath.Base(resolved))
		}
		if err := vfs.Rename(resolved, final); err != nil {
			lines = append(lines, fmt.Sprintf("mv: %v", err))
			anyFailed = true
		}
	}

	fmt.Fprint(env.Out, strings.Join(lines, "\n"))
	if anyFailed {
		return 1, nil
	}
	return 0, nil
}
