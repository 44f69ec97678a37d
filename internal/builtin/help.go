package builtin

import (
	"fmt"
	"strings"
)

// Help lists the builtin names plus a note that external commands are
// also runnable.
func Help(env *Env, args []string) (int, error) {
	fmt.Fprintln(env.Out, "termgo built-in commands:")
	fmt.Fprintln(env.Out, strings.Join(env.Names, " "))
	fmt.Fprint(env.Out, "\nYou can also run system commands.")
	return 0, nil
}
