// Package nlp maps a small set of natural-language requests to command
// lines. It is a fixed handful of pattern matches, not a language
// system; unmatched text translates to the empty string.
package nlp

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	createPattern   = regexp.MustCompile(`create (a )?(folder|directory) called (\w[\w\-_.]*)`)
	moveIntoPattern = regexp.MustCompile(`move ([\w\-_.]+) into`)
	moveToPattern   = regexp.MustCompile(`move ([\w\-_.]+) to ([\w\-/.]+)`)
	deletePattern   = regexp.MustCompile(`delete (file )?([\w\-_.]+)`)
)

// Translate maps a natural-language request to a command line, or ""
// when no pattern matches. Pure function; the caller decides whether to
// feed the result back into the engine.
func Translate(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	if m := createPattern.FindStringSubmatch(text); m != nil {
		name := m[3]
		if mv := moveIntoPattern.FindStringSubmatch(text); mv != nil {
			return fmt.Sprintf("mkdir %s && mv %s %s", name, mv[1], name)
		}
		return "mkdir " + name
	}

	if m := moveToPattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("mv %s %s", m[1], m[2])
	}

	if m := deletePattern.FindStringSubmatch(text); m != nil {
		return "rm " + m[2]
	}

	return ""
}
