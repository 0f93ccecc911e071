package command

import "github.com/google/shlex"

// Tokenize splits a line into arguments using shell-style quoting.
// Malformed quoting yields a ParseError.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}
	return tokens, nil
}

// Dispatch resolves and runs the command named by the first token. The
// remaining tokens are bound positionally to the command's parameters
// and validated against their choice domains; the callback runs only
// when every check passes. Callback errors are returned untouched.
// Dispatching no tokens is a no-op.
func (t *Table) Dispatch(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	spec, err := t.Resolve(tokens[0])
	if err != nil {
		return err
	}
	args := tokens[1:]
	if len(args) < spec.requiredCount() || len(args) > len(spec.Params) {
		return &ArityError{Spec: spec, Given: len(args)}
	}
	values := make(Args, len(args))
	for i, arg := range args {
		p := spec.Params[i]
		if domain, ok := p.Domain(); ok && !contains(domain, arg) {
			return &InvalidChoiceError{Spec: spec, Param: p.Name, Value: arg, Allowed: domain}
		}
		values[p.Name] = arg
	}
	return spec.Run(values)
}

// Submit tokenizes a raw line and dispatches it. A blank line reports
// ok=false with no error so callers can render an empty log row.
func (t *Table) Submit(line string) (ok bool, err error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		return false, nil
	}
	return true, t.Dispatch(tokens)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
