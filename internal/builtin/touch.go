package builtin

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// Touch creates each file if absent or refreshes its modification time
// if present. Unlike the other file builtins, touch aborts the whole
// call on the first failure.
func Touch(env *Env, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing operand")
	}

	vfs := env.Session.FS()
	now := time.Now()
	for _, name := range args {
		resolved := env.Session.Resolve(name)

		err := vfs.Chtimes(resolved, now, now)
		if errors.Is(err, fs.ErrNotExist) {
			fd, createErr := vfs.Create(resolved)
			if createErr != nil {
				fmt.Fprintf(env.Out, "touch: %v", createErr)
				return 1, nil
			}
			fd.Close()
			continue
		}
		if err != nil {
			fmt.Fprintf(env.Out, "touch: %v", err)
			return 1, nil
		}
	}

	return 0, nil
}
