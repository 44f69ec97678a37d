package builtin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Rmdir removes each directory only if it is empty. Per-entry failures
// are reported and the batch continues.
func Rmdir(env *Env, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing operand")
	}

	vfs := env.Session.FS()
	var lines []string
	anyFailed := false
	for _, dir := range args {
		resolved := env.Session.Resolve(dir)

		info, err := vfs.Stat(resolved)
		switch {
		case err != nil:
			lines = append(lines, fmt.Sprintf("rmdir: failed to remove '%s': %v", dir, err))
			anyFailed = true
			continue
		case !info.IsDir():
			lines = append(lines, fmt.Sprintf("rmdir: failed to remove '%s': Not a directory", dir))
			anyFailed = true
			continue
		}

		entries, err := afero.ReadDir(vfs, resolved)
		switch {
		case err != nil:
			lines = append(lines, fmt.Sprintf("rmdir: failed to remove '%s': %v", dir, err))
			anyFailed = true
		case len(entries) > 0:
			lines = append(lines, fmt.Sprintf("rmdir: failed to remove '%s': Directory not empty", dir))
			anyFailed = true
		default:
			if err := vfs.Remove(resolved); err != nil {
				lines = append(lines, fmt.Sprintf("rmdir: failed to remove '%s': %v", dir, err))
				anyFailed = true
			}
		}
	}

	fmt.Fprint(env.Out, strings.Join(lines, "\n"))
	if anyFailed {
		return 1, nil
	}
	return 0, nil
}
