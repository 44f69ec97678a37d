package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termgo-sh/termgo/internal/builtin"
)

var commandFlag string

// execCmd evaluates a single line non-interactively and exits with the
// result's status code.
var execCmd = &cobra.Command{
	Use:          "exec [-c COMMAND] [ARG...]",
	Short:        "Evaluate a single command line and exit",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		line := commandFlag
		if line == "" {
			line = strings.Join(args, " ")
		}

		_, sess, eng, err := setup()
		if err != nil {
			return err
		}

		res, execErr := eng.Execute(line, sess)
		if res.Output != "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
		}
		if execErr != nil && !errors.Is(execErr, builtin.ErrExit) {
			return execErr
		}
		if res.Code != 0 {
			os.Exit(res.Code)
		}
		return nil
	},
}

func init() {
	execCmd.Flags().StringVarP(&commandFlag, "command", "c", "", "command line to evaluate")
	rootCmd.AddCommand(execCmd)
}
