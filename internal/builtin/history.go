package builtin

import (
	"fmt"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/termgo-sh/termgo/internal/history"
)

// History renders the most recent entries of the session history,
// 1-indexed, oldest of the window first.
func History(env *Env, args []string) (int, error) {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(append([]string{"history"}, args...), nil); err != nil || *helpOpt {
		if err != nil {
			fmt.Fprintln(env.Out, err)
		}
		fmt.Fprintln(env.Out, "Display or manipulate the history list.")
		fmt.Fprintln(env.Out, "Options:")
		opts.PrintOptions(env.Out)
		if err != nil {
			return 1, nil
		}
		return 0, nil
	}

	if *clear {
		env.Session.ClearHistory()
		return 0, nil
	}

	lines := env.Session.History()
	limit := env.HistoryLimit
	if limit <= 0 {
		limit = history.DefaultLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, fmt.Sprintf("%5d  %s", i+1, line))
	}
	fmt.Fprint(env.Out, strings.Join(out, "\n"))
	return 0, nil
}
