// Package session owns the mutable state shared across commands within
// one interpreter run: the working directory and the command history.
package session

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/termgo-sh/termgo/internal/shell"
)

// Session is created once per interpreter instance. It is not safe for
// concurrent use; command evaluation owns it for the duration of a call.
type Session struct {
	fs      afero.Fs
	cwd     string
	home    string
	history []string
}

// New creates a session rooted at cwd. The filesystem is injected so
// tests can run against an in-memory one.
func New(fs afero.Fs, cwd, home string) *Session {
	return &Session{
		fs:   fs,
		cwd:  filepath.Clean(cwd),
		home: home,
	}
}

// FS returns the filesystem the session operates on.
func (s *Session) FS() afero.Fs {
	return s.fs
}

// Getwd returns the current working directory.
func (s *Session) Getwd() string {
	return s.cwd
}

// Home returns the home directory used for "~" expansion and as the
// default target of cd.
func (s *Session) Home() string {
	return s.home
}

// Resolve expands and absolutizes a path against the session working
// directory.
func (s *Session) Resolve(path string) string {
	return shell.Resolve(path, s.cwd, s.home)
}

// Chdir changes the working directory to the resolved path. The target
// must be an existing directory; on failure the working directory is
// left unchanged.
func (s *Session) Chdir(path string) error {
	target := s.Resolve(path)
	info, err := s.fs.Stat(target)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("no such directory: %s", target)
	}
	s.cwd = target
	return nil
}

// AppendHistory records one executed input line. History is append-only
// during a session.
func (s *Session) AppendHistory(line string) {
	s.history = append(s.history, line)
}

// SeedHistory pre-populates history with lines restored by a persistence
// collaborator.
func (s *Session) SeedHistory(lines []string) {
	s.history = append(s.history, lines...)
}

// ClearHistory deletes all recorded entries.
func (s *Session) ClearHistory() {
	s.history = nil
}

// History returns a copy of the recorded lines, oldest first.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}
