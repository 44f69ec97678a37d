// Package history persists session history across interpreter runs as
// newline-delimited raw lines.
package history

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// DefaultLimit caps how many entries are kept on disk.
const DefaultLimit = 1000

// Store reads and writes the history file.
type Store struct {
	fs    afero.Fs
	path  string
	limit int
}

// NewStore creates a store for the given file. A non-positive limit
// falls back to DefaultLimit.
func NewStore(fs afero.Fs, path string, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{fs: fs, path: path, limit: limit}
}

// Load returns previously persisted lines, oldest first. A missing
// file is not an error.
func (s *Store) Load() ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Save writes the most recent lines, capped at the store limit.
func (s *Store) Save(lines []string) error {
	if len(lines) > s.limit {
		lines = lines[len(lines)-s.limit:]
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return afero.WriteFile(s.fs, s.path, buf.Bytes(), 0600)
}
