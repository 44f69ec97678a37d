package builtin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Cat concatenates file contents in argument order, separated by a
// line break. A file that cannot be read is reported inline; remaining
// files still have their contents concatenated and the call as a whole
// does not set a failure status.
func Cat(env *Env, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing operand")
	}

	parts := make([]string, 0, len(args))
	for _, name := range args {
		data, err := afero.ReadFile(env.Session.FS(), env.Session.Resolve(name))
		if err != nil {
			parts = append(parts, fmt.Sprintf("cat: %v", err))
			continue
		}
		parts = append(parts, string(data))
	}

	fmt.Fprint(env.Out, strings.Join(parts, "\n"))
	return 0, nil
}
