package builtin

import (
	"fmt"
	"strings"

	"github.com/termgo-sh/termgo/internal/nlp"
)

// Nlp translates a natural-language request into a command line and
// feeds it back into the engine as if typed directly.
func Nlp(env *Env, args []string) (int, error) {
	text := strings.Join(args, " ")

	command := nlp.Translate(text)
	if command == "" {
		fmt.Fprint(env.Out, "Could not interpret natural language command.")
		return 0, nil
	}

	code, output, err := env.Exec(command)
	if err != nil {
		// Termination signal from the translated command.
		return code, err
	}
	if output == "" {
		output = "Executed: " + command
	}
	fmt.Fprint(env.Out, output)
	return code, nil
}
