package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// runExternal invokes a program directly with the session's working
// directory; no shell is interposed. Standard output and standard
// error are captured fully; the call blocks until the child exits,
// with no timeout and no streaming of partial output.
func runExternal(tokens []string, dir string) Result {
	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String()
	if stderr.Len() > 0 {
		output += "\n" + stderr.String()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Result{Code: 0, Output: output}
	case errors.As(err, &exitErr):
		return Result{Code: exitErr.ExitCode(), Output: output}
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
		return Result{Code: 127, Output: fmt.Sprintf("%s: command not found", tokens[0])}
	default:
		return Result{Code: 1, Output: fmt.Sprintf("Error running external command: %v", err)}
	}
}
