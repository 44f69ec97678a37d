package builtin

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Rm removes each target that is not a directory. Per-target failures
// are independent and do not abort the batch.
func Rm(env *Env, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing operand")
	}

	vfs := env.Session.FS()
	var lines []string
	anyFailed := false
	for _, target := range args {
		resolved := env.Session.Resolve(target)

		info, err := vfs.Stat(resolved)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			lines = append(lines, fmt.Sprintf("rm: cannot remove '%s': No such file or directory", target))
			anyFailed = true
		case err != nil:
			lines = append(lines, fmt.Sprintf("rm: %v", err))
			anyFailed = true
		case info.IsDir():
			// No recursive delete; directories are refused.
			lines = append(lines, fmt.Sprintf("rm: cannot remove '%s': Is a directory", target))
			anyFailed = true
		default:
			if err := vfs.Remove(resolved); err != nil {
				lines = append(lines, fmt.Sprintf("rm: %v", err))
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
