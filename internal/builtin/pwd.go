package builtin

import "fmt"

// Pwd reports the session working directory.
func Pwd(env *Env, args []string) (int, error) {
	fmt.Fprint(env.Out, env.Session.Getwd())
	return 0, nil
}

// Cls emits the ANSI clear-screen sequence.
func Cls(env *Env, args []string) (int, error) {
	fmt.Fprint(env.Out, "\033[2J\033[H")
	return 0, nil
}
