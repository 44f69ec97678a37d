package builtin

import "fmt"

// Cd changes the session working directory, defaulting to the home
// directory. A failed cd leaves the working directory unchanged.
func Cd(env *Env, args []string) (int, error) {
	target := env.Session.Home()
	if len(args) > 0 {
		target = args[0]
	}

	if err := env.Session.Chdir(target); err != nil {
		fmt.Fprintf(env.Out, "cd: %v", err)
		return 1, nil
	}
	return 0, nil
}
