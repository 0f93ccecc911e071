// Package complete computes command-name and argument-value
// completions for a partially typed line.
package complete

import (
	"strings"

	"parley/command"
)

// Action describes what a completion attempt produced. Replace, when
// non-empty, is the new content for the edit buffer; Lines are
// candidate listings or usage hints for the log. Both empty means
// nothing to do.
type Action struct {
	Replace string
	Lines   []string
}

// Resolver answers Tab presses against a command table.
type Resolver struct {
	table *command.Table
}

// New creates a resolver over the given table.
func New(table *command.Table) *Resolver {
	return &Resolver{table: table}
}

// Complete inspects the current, possibly partial, line. With no input
// it lists every table key. A lone partial first token is matched
// against command names; after a resolved command the parameter the
// cursor is on has its choice domain matched instead. A unique match
// replaces the line, multiple matches are listed, zero matches are a
// no-op. Malformed quoting is silently ignored.
func (r *Resolver) Complete(line string) Action {
	tokens, err := command.Tokenize(line)
	if err != nil {
		return Action{}
	}
	if len(tokens) == 0 {
		return Action{Lines: []string{strings.Join(r.table.Names(), "  ")}}
	}

	// Trailing unescaped whitespace means the user has moved past the
	// last typed token onto a new, empty one.
	newToken := endsInWhitespace(line)

	first := tokens[0]
	if len(tokens) == 1 && !newToken {
		return r.completeName(first)
	}

	spec, err := r.table.Resolve(first)
	if err != nil {
		return Action{}
	}

	completed := len(tokens) - 1
	partial := ""
	if !newToken && len(tokens) > 1 {
		completed--
		partial = tokens[len(tokens)-1]
	}
	if completed >= len(spec.Params) {
		return usage(spec)
	}
	domain, ok := spec.Params[completed].Domain()
	if !ok {
		return usage(spec)
	}

	matches := prefixMatches(domain, partial)
	switch len(matches) {
	case 0:
		return Action{}
	case 1:
		prefix := tokens[:len(tokens)-1]
		if newToken {
			prefix = tokens
		}
		return Action{Replace: joinTokens(prefix) + " " + matches[0] + " "}
	}
	return Action{Lines: []string{strings.Join(matches, "  ")}}
}

func (r *Resolver) completeName(partial string) Action {
	matches := prefixMatches(r.table.Names(), partial)
	switch len(matches) {
	case 0:
		return Action{}
	case 1:
		return Action{Replace: matches[0] + " "}
	}
	return Action{Lines: []string{strings.Join(matches, "  ")}}
}

func usage(spec *command.Spec) Action {
	return Action{Lines: []string{"usage: " + spec.Usage()}}
}

func prefixMatches(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}

// endsInWhitespace reports whether the line ends in unescaped
// whitespace. A backslash-escaped trailing space belongs to the token
// being typed, not to a new one; an escaped backslash does not escape
// the space after it.
func endsInWhitespace(line string) bool {
	if line == "" {
		return false
	}
	last := line[len(line)-1]
	if last != ' ' && last != '\t' {
		return false
	}
	backslashes := 0
	for i := len(line) - 2; i >= 0 && line[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}

// joinTokens reassembles completed tokens, requoting any that contain
// whitespace.
func joinTokens(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		if strings.ContainsAny(tok, " \t") {
			parts[i] = `"` + tok + `"`
		} else {
			parts[i] = tok
		}
	}
	return strings.Join(parts, " ")
}
