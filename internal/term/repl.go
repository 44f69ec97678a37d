// Package term owns the interactive read/print loop. The engine never
// reads standard input or writes a prompt itself; this package does.
package term

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/termgo-sh/termgo/internal/builtin"
	"github.com/termgo-sh/termgo/internal/config"
	"github.com/termgo-sh/termgo/internal/engine"
	"github.com/termgo-sh/termgo/internal/history"
	"github.com/termgo-sh/termgo/internal/session"
)

var promptColor = color.New(color.FgGreen, color.Bold)

// REPL drives an Engine interactively until a termination signal or
// end of input.
type REPL struct {
	Engine  *engine.Engine
	Session *session.Session
	Config  *config.Configuration

	// Store persists history across runs. Optional.
	Store *history.Store
}

// Run reads lines, evaluates them, and prints each result's output.
func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       r.prompt(),
		HistoryLimit: r.Config.HistoryLimit,
		AutoComplete: &completer{
			session: r.Session,
			names:   r.Engine.BuiltinNames(),
		},
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.loadHistory(rl)
	defer r.saveHistory()

	fmt.Fprintf(rl, "termgo - %s/%s - type 'help' for commands\n", runtime.GOOS, runtime.GOARCH)

	for {
		rl.SetPrompt(r.prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue
		}

		res, execErr := r.Engine.Execute(line, r.Session)
		if res.Output != "" {
			fmt.Fprintln(rl, res.Output)
		}
		if errors.Is(execErr, builtin.ErrExit) {
			fmt.Fprintln(rl, "Exiting termgo. History saved.")
			return nil
		}
	}
}

// prompt renders the configured template against the session state.
func (r *REPL) prompt() string {
	prompt := strings.ReplaceAll(r.Config.Prompt, `\w`, filepath.Base(r.Session.Getwd()))
	if r.Config.Color {
		return promptColor.Sprint(prompt)
	}
	return prompt
}

// loadHistory restores persisted lines into the session and seeds the
// readline ring so arrow-up recall works across runs.
func (r *REPL) loadHistory(rl *readline.Instance) {
	if r.Store == nil {
		return
	}
	lines, err := r.Store.Load()
	if err != nil {
		log.Printf("Warning: could not load history: %v", err)
		return
	}
	r.Session.SeedHistory(lines)
	for _, line := range lines {
		rl.Operation.SaveHistory(line)
	}
}

func (r *REPL) saveHistory() {
	if r.Store == nil {
		return
	}
	if err := r.Store.Save(r.Session.History()); err != nil {
		log.Printf("Warning: could not save history: %v", err)
	}
}
