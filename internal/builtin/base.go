// Package builtin implements the commands the interpreter runs itself
// rather than delegating to an external process.
package builtin

import (
	"errors"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/termgo-sh/termgo/internal/session"
	"github.com/termgo-sh/termgo/internal/stats"
)

// ErrExit signals that the session should terminate. It is not a
// failure: dispatch and the read loop propagate it instead of
// converting it to a status code.
var ErrExit = errors.New("session terminated")

// Env carries everything a builtin may touch during one invocation.
type Env struct {
	Session *session.Session
	Stats   stats.Provider

	// Out receives the builtin's output text.
	Out io.Writer

	// Names is the registry's sorted name set, for help.
	Names []string

	// Exec feeds a command line back into the engine. Used by nlp.
	Exec func(line string) (code int, output string, err error)

	// ProcessSample caps ps/top snapshots.
	ProcessSample int

	// HistoryLimit caps the history rendering window.
	HistoryLimit int

	// Color enables ANSI colors in listings.
	Color bool
}

func (e *Env) paint(c *color.Color, s string) string {
	if e.Color {
		return c.Sprint(s)
	}
	return s
}

// Func implements one builtin. Output is written to env.Out and the
// returned code is the command's status. A non-nil error aborts the
// invocation; the dispatcher reports it (or, for ErrExit, propagates
// it past the normal result path).
type Func func(env *Env, args []string) (int, error)

// Entry is one (name, operation) pair of the registry.
type Entry struct {
	Name  string
	Short string
	Run   Func
}

// Registry is the fixed name-to-builtin table. The command set is
// closed and known at build time; the table is immutable after
// construction.
type Registry struct {
	entries map[string]Entry
	names   []string
}

// NewRegistry builds the builtin table.
func NewRegistry() *Registry {
	entries := []Entry{
		{Name: "cat", Short: "Concatenate files to the output.", Run: Cat},
		{Name: "cd", Short: "Change the working directory.", Run: Cd},
		{Name: "cls", Short: "Clear the screen.", Run: Cls},
		{Name: "cp", Short: "Copy files and directories.", Run: Cp},
		{Name: "cpu", Short: "Show CPU utilization and core count.", Run: Cpu},
		{Name: "echo", Short: "Display a line of text.", Run: Echo},
		{Name: "exit", Short: "Terminate the session.", Run: Exit},
		{Name: "help", Short: "List builtin commands.", Run: Help},
		{Name: "history", Short: "Display the history list.", Run: History},
		{Name: "ls", Short: "List directory contents.", Run: Ls},
		{Name: "mem", Short: "Show memory statistics.", Run: Mem},
		{Name: "mkdir", Short: "Create directories.", Run: Mkdir},
		{Name: "mv", Short: "Move files into a destination.", Run: Mv},
		{Name: "nlp", Short: "Translate natural language into a command and run it.", Run: Nlp},
		{Name: "ps", Short: "Snapshot processes ranked by CPU.", Run: Ps},
		{Name: "pwd", Short: "Print the working directory.", Run: Pwd},
		{Name: "quit", Short: "Terminate the session.", Run: Exit},
		{Name: "rm", Short: "Remove files.", Run: Rm},
		{Name: "rmdir", Short: "Remove empty directories.", Run: Rmdir},
		{Name: "top", Short: "Snapshot processes and memory.", Run: Top},
		{Name: "touch", Short: "Create files or update their timestamps.", Run: Touch},
	}

	byName := make(map[string]Entry, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
		names = append(names, e.Name)
	}
	sort.Strings(names)

	return &Registry{entries: byName, names: names}
}

// Lookup finds a builtin by name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the sorted builtin name set.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}
