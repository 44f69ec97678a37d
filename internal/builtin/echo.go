package builtin

import (
	"fmt"
	"strings"
)

// Echo returns its arguments space-joined verbatim.
func Echo(env *Env, args []string) (int, error) {
	fmt.Fprint(env.Out, strings.Join(args, " "))
	return 0, nil
}
