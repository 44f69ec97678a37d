package builtin

import (
	"errors"
	"fmt"
	"strings"
)

// Mkdir creates each directory, parents allowed. An operand that
// already exists reports "File exists" without aborting the rest.
func Mkdir(env *Env, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing operand")
	}

	fs := env.Session.FS()
	var lines []string
	anyFailed := false
	for _, dir := range args {
		target := env.Session.Resolve(dir)

		if _, err := fs.Stat(target); err == nil {
			lines = append(lines, fmt.Sprintf("mkdir: cannot create directory '%s': File exists", dir))
			anyFailed = true
			continue
		}
		if err := fs.MkdirAll(target, 0o777); err != nil {
			lines = append(lines, fmt.Sprintf("mkdir: %v", err))
			anyFailed = true
		}
	}

	fmt.Fprint(env.Out, strings.Join(lines, "\n"))
	if anyFailed {
		return 1, nil
	}
	return 0, nil
}
