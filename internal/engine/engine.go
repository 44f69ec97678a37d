// Package engine evaluates input lines: chain splitting, builtin
// dispatch, and external-process invocation against a session.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/termgo-sh/termgo/internal/builtin"
	"github.com/termgo-sh/termgo/internal/session"
	"github.com/termgo-sh/termgo/internal/shell"
	"github.com/termgo-sh/termgo/internal/stats"
)

// Result is the outcome of evaluating input: a status code and the
// combined output text. Code 0 is success; 127 is reserved for unknown
// external commands.
type Result struct {
	Code   int
	Output string
}

// Options configure an Engine. The zero value is usable: stats default
// to the unavailable provider.
type Options struct {
	Stats         stats.Provider
	ProcessSample int
	HistoryLimit  int
	Color         bool
}

// Engine evaluates command lines against a session. It is synchronous:
// every builtin and external invocation runs to completion before the
// next chain link is evaluated.
type Engine struct {
	registry *builtin.Registry
	opts     Options
}

// New creates an engine around the given builtin registry.
func New(registry *builtin.Registry, opts Options) *Engine {
	if opts.Stats == nil {
		opts.Stats = stats.Unavailable()
	}
	return &Engine{registry: registry, opts: opts}
}

// BuiltinNames returns the registry's sorted name set, for completion.
func (e *Engine) BuiltinNames() []string {
	return e.registry.Names()
}

// Execute evaluates one raw input line against the session and returns
// the result of the last evaluated chain link. The returned error is
// nil or builtin.ErrExit; every other failure surfaces as a non-zero
// Result instead.
func (e *Engine) Execute(line string, sess *session.Session) (Result, error) {
	if strings.TrimSpace(line) == "" {
		return Result{}, nil
	}
	sess.AppendHistory(line)

	var last Result
	for i, link := range shell.SplitChain(line) {
		// AND short-circuits the rest of the chain on failure;
		// SEQUENCE always continues.
		if i > 0 && link.Joiner == shell.JoinAnd && last.Code != 0 {
			break
		}

		res, err := e.evalCommand(link.Text, sess)
		if err != nil {
			return res, err
		}
		last = res
	}
	return last, nil
}

func (e *Engine) evalCommand(text string, sess *session.Session) (Result, error) {
	tokens, err := shell.Tokenize(text)
	if err != nil {
		return Result{Code: 1, Output: fmt.Sprintf("Error parsing command: %v", err)}, nil
	}
	if len(tokens) == 0 {
		return Result{}, nil
	}

	if entry, ok := e.registry.Lookup(tokens[0]); ok {
		return e.runBuiltin(entry, tokens[1:], sess)
	}
	return runExternal(tokens, sess.Getwd()), nil
}

func (e *Engine) runBuiltin(entry builtin.Entry, args []string, sess *session.Session) (Result, error) {
	var out strings.Builder
	env := &builtin.Env{
		Session:       sess,
		Stats:         e.opts.Stats,
		Out:           &out,
		Names:         e.registry.Names(),
		ProcessSample: e.opts.ProcessSample,
		HistoryLimit:  e.opts.HistoryLimit,
		Color:         e.opts.Color,
		Exec: func(line string) (int, string, error) {
			res, err := e.Execute(line, sess)
			return res.Code, res.Output, err
		},
	}

	code, err := entry.Run(env, args)
	switch {
	case errors.Is(err, builtin.ErrExit):
		return Result{Code: code, Output: out.String()}, builtin.ErrExit
	case err != nil:
		return Result{
			Code:   1,
			Output: fmt.Sprintf("Error executing builtin '%s': %v", entry.Name, err),
		}, nil
	}
	return Result{Code: code, Output: out.String()}, nil
}
