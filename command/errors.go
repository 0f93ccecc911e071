package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand reports a name that matched nothing in the table.
var ErrUnknownCommand = errors.New("unrecognized command")

// ParseError reports malformed quoting in a submitted line. No command
// state is touched when it occurs.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing command line: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AmbiguousError reports an abbreviation matching more than one
// command, carrying the candidate list.
type AmbiguousError struct {
	Input      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous command %q: could be %s", e.Input, strings.Join(e.Candidates, ", "))
}

// ArityError reports too few or too many arguments for a command.
type ArityError struct {
	Spec  *Spec
	Given int
}

func (e *ArityError) Error() string {
	required := e.Spec.requiredCount()
	if e.Given < required {
		return fmt.Sprintf("%s expects at least %d argument(s), got %d", e.Spec.Name, required, e.Given)
	}
	return fmt.Sprintf("%s accepts at most %d argument(s), got %d", e.Spec.Name, len(e.Spec.Params), e.Given)
}

// InvalidChoiceError reports an argument outside its parameter's
// choice domain.
type InvalidChoiceError struct {
	Spec    *Spec
	Param   string
	Value   string
	Allowed []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid %s %q (choose from %s)", e.Param, e.Value, strings.Join(e.Allowed, ", "))
}

// UsageOf returns the usage string of the command a validation error
// relates to, or "" when the error carries none.
func UsageOf(err error) string {
	var arity *ArityError
	if errors.As(err, &arity) {
		return arity.Spec.Usage()
	}
	var choice *InvalidChoiceError
	if errors.As(err, &choice) {
		return choice.Spec.Usage()
	}
	return ""
}
