// Package command routes submitted lines to named commands with typed,
// validated positional arguments.
package command

import (
	"fmt"
	"sort"
	"strings"
)

// Provider computes a parameter's choice domain at call time. It is
// only invoked when validation or completion actually needs the
// domain, never eagerly.
type Provider func() []string

// Param describes one positional parameter.
type Param struct {
	Name     string
	Required bool
	Help     string

	// Choices restricts accepted values to a static set. ChoiceFunc
	// does the same with a dynamically computed set; it wins when both
	// are present. Leave both empty for a free-form parameter.
	Choices    []string
	ChoiceFunc Provider
}

// Domain returns the parameter's choice set, resolving a dynamic
// provider fresh on every call. ok is false for free-form parameters.
func (p Param) Domain() (values []string, ok bool) {
	if p.ChoiceFunc != nil {
		return p.ChoiceFunc(), true
	}
	if len(p.Choices) > 0 {
		return p.Choices, true
	}
	return nil, false
}

// Args holds the parsed argument values of a successful submission,
// keyed by parameter name. Optional parameters that were not supplied
// are absent.
type Args map[string]string

// Callback is the function invoked when a command dispatches.
type Callback func(args Args) error

// Spec describes a registered command.
type Spec struct {
	Name     string
	Help     string
	Examples []string
	Params   []Param
	Run      Callback

	aliases []string
}

// Usage renders the command's calling convention: required parameters
// as <name>, optional ones as [name].
func (s *Spec) Usage() string {
	var b strings.Builder
	b.WriteString(s.Name)
	for _, p := range s.Params {
		if p.Required {
			fmt.Fprintf(&b, " <%s>", p.Name)
		} else {
			fmt.Fprintf(&b, " [%s]", p.Name)
		}
	}
	return b.String()
}

// Aliases returns the alias names registered for this command, sorted.
func (s *Spec) Aliases() []string {
	out := make([]string, len(s.aliases))
	copy(out, s.aliases)
	sort.Strings(out)
	return out
}

func (s *Spec) requiredCount() int {
	n := 0
	for _, p := range s.Params {
		if p.Required {
			n++
		}
	}
	return n
}

// Table maps command names and aliases to their specs. Multiple keys
// may reference the same spec.
type Table struct {
	entries map[string]*Spec

	// Abbrev enables resolving a typed name by unique prefix match.
	Abbrev bool
}

// NewTable creates an empty command table with abbreviation matching
// enabled.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Spec), Abbrev: true}
}

// Register adds a command. The name must be free, the callback set,
// and no required parameter may follow an optional one.
func (t *Table) Register(spec *Spec) error {
	if spec.Name == "" {
		return fmt.Errorf("registering command: empty name")
	}
	if spec.Run == nil {
		return fmt.Errorf("registering %q: no callback", spec.Name)
	}
	if _, exists := t.entries[spec.Name]; exists {
		return fmt.Errorf("registering %q: name already in use", spec.Name)
	}
	sawOptional := false
	for _, p := range spec.Params {
		if !p.Required {
			sawOptional = true
		} else if sawOptional {
			return fmt.Errorf("registering %q: required parameter %q after an optional one", spec.Name, p.Name)
		}
	}
	t.entries[spec.Name] = spec
	return nil
}

// Alias adds a new key referencing an existing command's spec.
func (t *Table) Alias(alias, existing string) error {
	spec, ok := t.entries[existing]
	if !ok {
		return fmt.Errorf("alias %q: %w: %s", alias, ErrUnknownCommand, existing)
	}
	if _, taken := t.entries[alias]; taken {
		return fmt.Errorf("alias %q: name already in use", alias)
	}
	t.entries[alias] = spec
	spec.aliases = append(spec.aliases, alias)
	return nil
}

// Names returns every table key (names and aliases), sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs returns each distinct command exactly once, sorted by primary
// name, regardless of how many aliases reference it.
func (t *Table) Specs() []*Spec {
	seen := make(map[*Spec]bool)
	var specs []*Spec
	for _, spec := range t.entries {
		if !seen[spec] {
			seen[spec] = true
			specs = append(specs, spec)
		}
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// Exact looks a key up without prefix matching.
func (t *Table) Exact(name string) (*Spec, bool) {
	spec, ok := t.entries[name]
	return spec, ok
}

// Resolve maps a typed name to a command: an exact key match wins;
// otherwise, with abbreviation matching enabled, a unique prefix match
// resolves and multiple matches are ambiguous.
func (t *Table) Resolve(name string) (*Spec, error) {
	if spec, ok := t.entries[name]; ok {
		return spec, nil
	}
	if !t.Abbrev {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	matches := t.prefixMatches(name)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	case 1:
		return t.entries[matches[0]], nil
	}
	return nil, &AmbiguousError{Input: name, Candidates: matches}
}

func (t *Table) prefixMatches(prefix string) []string {
	var matches []string
	for name := range t.entries {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}
