package shell

import (
	"fmt"

	shlex "github.com/anmitsu/go-shlex"
)

// ParseError reports malformed quoting or escaping in a sub-command.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid syntax: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Tokenize splits one sub-command into shell-style tokens honoring
// POSIX quoting and backslash escapes. The first token is the command
// name, the rest are arguments.
func Tokenize(text string) ([]string, error) {
	tokens, err := shlex.Split(text, true)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	return tokens, nil
}
