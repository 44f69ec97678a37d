package term

import (
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/termgo-sh/termgo/internal/session"
)

// completer offers builtin names and entries of the session working
// directory, prefix matched on the word under the cursor.
type completer struct {
	session *session.Session
	names   []string
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	// Complete the last word only.
	word := typed
	if i := strings.LastIndexAny(typed, " \t"); i >= 0 {
		word = typed[i+1:]
	}

	seen := make(map[string]bool)
	var options []string
	add := func(name string) {
		if strings.HasPrefix(name, word) && !seen[name] {
			seen[name] = true
			options = append(options, name)
		}
	}

	for _, name := range c.names {
		add(name)
	}
	if infos, err := afero.ReadDir(c.session.FS(), c.session.Getwd()); err == nil {
		for _, info := range infos {
			add(info.Name())
		}
	}
	sort.Strings(options)

	completions := make([][]rune, 0, len(options))
	for _, opt := range options {
		completions = append(completions, []rune(opt[len(word):]))
	}
	return completions, len(word)
}
