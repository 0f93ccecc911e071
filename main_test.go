package main

import (
	"bytes"
	"io"
	"testing"

	"parley/app"
	"parley/config"
)

type fakeTTY struct {
	keys []byte
	pos  int
	out  bytes.Buffer
	idle func()
}

func (f *fakeTTY) ReadByte() (byte, error) {
	if f.pos >= len(f.keys) {
		return 0, io.EOF
	}
	b := f.keys[f.pos]
	f.pos++
	return b, nil
}

func (f *fakeTTY) TryReadByte() (byte, bool) {
	if f.pos >= len(f.keys) {
		return 0, false
	}
	b := f.keys[f.pos]
	f.pos++
	return b, true
}

func (f *fakeTTY) Write(p []byte) (int, error) { return f.out.Write(p) }
func (f *fakeTTY) Enter() error                { return nil }
func (f *fakeTTY) Leave() error                { return nil }
func (f *fakeTTY) Size() (int, int, error)     { return 80, 24, nil }
func (f *fakeTTY) SetIdleFunc(fn func())       { f.idle = fn }

// Every documented example of every registered command must pass the
// router's own validation.
func TestDocumentedExamplesDispatch(t *testing.T) {
	console, err := app.New(config.Default(), &fakeTTY{}, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if err := registerCommands(console); err != nil {
		t.Fatalf("register: %v", err)
	}
	for _, spec := range console.Table().Specs() {
		for _, example := range spec.Examples {
			ok, err := console.Table().Submit(example)
			if err != nil {
				t.Errorf("%s example %q: %v", spec.Name, example, err)
			}
			if !ok {
				t.Errorf("%s example %q: did not dispatch", spec.Name, example)
			}
		}
	}
}
