package shell

import "strings"

// Joiner is the operator connecting a chain link to the link before it.
type Joiner int

const (
	// JoinNone marks a link with no preceding operator (the first link).
	JoinNone Joiner = iota
	// JoinSequence runs the link unconditionally (";").
	JoinSequence
	// JoinAnd runs the link only if the previous one succeeded ("&&").
	JoinAnd
)

func (j Joiner) String() string {
	switch j {
	case JoinSequence:
		return ";"
	case JoinAnd:
		return "&&"
	default:
		return ""
	}
}

// Link is one sub-command of an input line paired with the joiner that
// preceded it.
type Link struct {
	Text   string
	Joiner Joiner
}

// SplitChain breaks a raw input line into chain links on ";" and "&&".
//
// The scan is character based: operators are recognized even inside quoted
// text, so `echo "a && b"` splits into two links. This mirrors how the
// interpreter has always behaved; tokenizing happens after splitting, per
// link. Empty links are dropped after trimming.
func SplitChain(line string) []Link {
	var links []Link
	var acc strings.Builder
	next := JoinNone

	// When a link between two operators is empty ("a ; && b") its
	// pending joiner is discarded with it; the later operator binds the
	// next non-empty link.
	flush := func(following Joiner) {
		if text := strings.TrimSpace(acc.String()); text != "" {
			links = append(links, Link{Text: text, Joiner: next})
		}
		acc.Reset()
		next = following
	}

	for i := 0; i < len(line); i++ {
		switch {
		case strings.HasPrefix(line[i:], "&&"):
			flush(JoinAnd)
			i++ // skip the second '&'
		case line[i] == ';':
			flush(JoinSequence)
		default:
			acc.WriteByte(line[i])
		}
	}
	flush(JoinNone)

	return links
}
