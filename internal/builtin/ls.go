package builtin

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"
)

var dirColor = color.New(color.FgBlue, color.Bold)

// Ls lists directory entries sorted lexicographically, marking
// directories with a trailing slash. Entries that cannot be inspected
// report their own error without aborting the listing.
func Ls(env *Env, args []string) (int, error) {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(append([]string{"ls"}, args...), nil); err != nil || *helpOpt {
		if err != nil {
			fmt.Fprintln(env.Out, err)
		}
		fmt.Fprintln(env.Out, "Usage: ls [PATH]")
		fmt.Fprintln(env.Out, "List information about PATH (the working directory by default).")
		opts.PrintOptions(env.Out)
		if err != nil {
			return 1, nil
		}
		return 0, nil
	}

	path := "."
	if rest := opts.Args(); len(rest) > 0 {
		path = rest[0]
	}
	target := env.Session.Resolve(path)

	fd, err := env.Session.FS().Open(target)
	if err != nil {
		fmt.Fprintf(env.Out, "ls: %v", err)
		return 0, nil
	}
	defer fd.Close()

	names, err := fd.Readdirnames(-1)
	if err != nil {
		fmt.Fprintf(env.Out, "ls: %v", err)
		return 0, nil
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		info, err := env.Session.FS().Stat(filepath.Join(target, name))
		switch {
		case err != nil:
			lines = append(lines, fmt.Sprintf("ls: cannot access %q: %v", name, err))
		case info.IsDir():
			lines = append(lines, env.paint(dirColor, name)+"/")
		default:
			lines = append(lines, name)
		}
	}

	fmt.Fprint(env.Out, strings.Join(lines, "\n"))
	return 0, nil
}
