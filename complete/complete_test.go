package complete

import (
	"strings"
	"testing"

	"parley/command"
)

func nopRun(command.Args) error { return nil }

func newResolver(t *testing.T) (*Resolver, *command.Table) {
	t.Helper()
	table := command.NewTable()
	specs := []*command.Spec{
		{Name: "help", Run: nopRun, Params: []command.Param{{
			Name:       "command",
			ChoiceFunc: table.Names,
		}}},
		{Name: "exit", Run: nopRun},
		{Name: "greet", Run: nopRun, Params: []command.Param{
			{Name: "name", Required: true},
			{Name: "greeting", Choices: []string{"hello", "howdy"}},
		}},
	}
	for _, spec := range specs {
		if err := table.Register(spec); err != nil {
			t.Fatalf("register %q: %v", spec.Name, err)
		}
	}
	return New(table), table
}

func TestEmptyLineListsAllNames(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete("")
	if len(action.Lines) != 1 {
		t.Fatalf("expected one listing line, got %v", action.Lines)
	}
	for _, name := range []string{"help", "exit", "greet"} {
		if !strings.Contains(action.Lines[0], name) {
			t.Errorf("listing missing %q: %q", name, action.Lines[0])
		}
	}
}

func TestUniqueNamePrefixAutofills(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete("gr")
	if action.Replace != "greet " {
		t.Errorf("expected autofill 'greet ', got %q", action.Replace)
	}
}

func TestAmbiguousNamePrefixLists(t *testing.T) {
	r, table := newResolver(t)
	if err := table.Register(&command.Spec{Name: "export", Run: nopRun}); err != nil {
		t.Fatalf("register: %v", err)
	}
	action := r.Complete("ex")
	if action.Replace != "" {
		t.Errorf("ambiguous prefix should not autofill, got %q", action.Replace)
	}
	if len(action.Lines) != 1 || !strings.Contains(action.Lines[0], "exit") || !strings.Contains(action.Lines[0], "export") {
		t.Errorf("expected both candidates listed, got %v", action.Lines)
	}
}

func TestUnknownNamePrefixIsNoop(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete("zz")
	if action.Replace != "" || len(action.Lines) != 0 {
		t.Errorf("expected no-op, got %+v", action)
	}
}

// Completing "help e" must turn the line into "help exit ".
func TestDynamicArgumentCompletion(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete("help e")
	if action.Replace != "help exit " {
		t.Errorf("expected 'help exit ', got %q", action.Replace)
	}
}

func TestTrailingWhitespaceStartsNewToken(t *testing.T) {
	r, _ := newResolver(t)
	// Cursor is past "greet ada", on the optional greeting parameter.
	action := r.Complete("greet ada ho")
	if action.Replace != "" {
		t.Errorf("ambiguous hello/howdy should not autofill, got %q", action.Replace)
	}
	action = r.Complete("greet ada hel")
	if action.Replace != "greet ada hello " {
		t.Errorf("expected 'greet ada hello ', got %q", action.Replace)
	}
}

func TestEscapedTrailingSpaceStaysOnToken(t *testing.T) {
	r, _ := newResolver(t)
	// The escaped space is part of the name still being typed, so the
	// cursor has not moved on to the greeting parameter. The name is
	// free-form, so the fallback is the usage hint.
	action := r.Complete(`greet ada\ `)
	if action.Replace != "" {
		t.Errorf("expected no autofill, got %q", action.Replace)
	}
	if len(action.Lines) != 1 || !strings.Contains(action.Lines[0], "usage: greet") {
		t.Errorf("expected usage hint, got %v", action.Lines)
	}
	// An escaped backslash does not escape the space after it.
	action = r.Complete(`greet ada\\ `)
	if action.Replace != "" {
		t.Errorf("ambiguous greeting should not autofill, got %q", action.Replace)
	}
	if len(action.Lines) != 1 || !strings.Contains(action.Lines[0], "hello") {
		t.Errorf("expected greeting choices listed, got %v", action.Lines)
	}
}

func TestFreeFormParameterShowsUsage(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete("greet ")
	if len(action.Lines) != 1 || !strings.Contains(action.Lines[0], "greet <name> [greeting]") {
		t.Errorf("expected usage hint, got %v", action.Lines)
	}
}

func TestBeyondDeclaredParametersShowsUsage(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete("exit ")
	if len(action.Lines) != 1 || !strings.Contains(action.Lines[0], "usage: exit") {
		t.Errorf("expected usage hint, got %v", action.Lines)
	}
}

func TestMalformedQuotingIsNoop(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete(`greet "ada`)
	if action.Replace != "" || len(action.Lines) != 0 {
		t.Errorf("expected no-op on malformed quoting, got %+v", action)
	}
}

func TestQuotedTokenSurvivesAutofill(t *testing.T) {
	r, _ := newResolver(t)
	action := r.Complete(`greet "ada lovelace" hel`)
	if action.Replace != `greet "ada lovelace" hello ` {
		t.Errorf("expected requoted token, got %q", action.Replace)
	}
}
