package builtin

// Exit signals session termination. Both exit and quit map here. The
// signal travels as ErrExit, outside the normal status/output result.
func Exit(env *Env, args []string) (int, error) {
	return 0, ErrExit
}
