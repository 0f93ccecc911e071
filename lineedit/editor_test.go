package lineedit

import "testing"

func TestInsert(t *testing.T) {
	e := New()
	e.Insert('h')
	e.Insert('i')
	if e.Text() != "hi" {
		t.Errorf("expected 'hi', got %q", e.Text())
	}
	if e.Cursor() != 2 {
		t.Errorf("expected cursor at 2, got %d", e.Cursor())
	}
}

func TestInsertMiddle(t *testing.T) {
	e := New()
	e.Set("hllo")
	e.cursor = 1
	e.Insert('e')
	if e.Text() != "hello" {
		t.Errorf("expected 'hello', got %q", e.Text())
	}
	if e.Cursor() != 2 {
		t.Errorf("expected cursor at 2, got %d", e.Cursor())
	}
}

func TestDeleteBackward(t *testing.T) {
	e := New()
	e.Set("hello")
	if !e.DeleteBackward() {
		t.Error("DeleteBackward at end should delete")
	}
	if e.Text() != "hell" {
		t.Errorf("expected 'hell', got %q", e.Text())
	}

	e.Home()
	if e.DeleteBackward() {
		t.Error("DeleteBackward at start should return false")
	}
}

func TestDeleteForward(t *testing.T) {
	e := New()
	e.Set("hello")
	if e.DeleteForward() {
		t.Error("DeleteForward at end should return false")
	}
	e.Home()
	if !e.DeleteForward() {
		t.Error("DeleteForward at start should delete")
	}
	if e.Text() != "ello" {
		t.Errorf("expected 'ello', got %q", e.Text())
	}
	if e.Cursor() != 0 {
		t.Errorf("cursor should stay at 0, got %d", e.Cursor())
	}
}

func TestMoveClamped(t *testing.T) {
	e := New()
	e.Set("ab")
	e.Right()
	if e.Cursor() != 2 {
		t.Errorf("Right at end should clamp, got %d", e.Cursor())
	}
	e.Home()
	e.Left()
	if e.Cursor() != 0 {
		t.Errorf("Left at start should clamp, got %d", e.Cursor())
	}
}

func TestSetMovesCursorToEnd(t *testing.T) {
	e := New()
	e.Set("hello")
	if e.Cursor() != 5 {
		t.Errorf("expected cursor at end, got %d", e.Cursor())
	}
	e.Clear()
	if e.Text() != "" || e.Cursor() != 0 {
		t.Errorf("Clear left %q cursor %d", e.Text(), e.Cursor())
	}
}

// The cursor must stay within [0, len] after any sequence of edits.
func TestCursorInvariant(t *testing.T) {
	e := New()
	ops := []func(){
		func() { e.Insert('a') },
		func() { e.Insert('b') },
		func() { e.DeleteBackward() },
		func() { e.Left() },
		func() { e.DeleteForward() },
		func() { e.Right() },
		func() { e.Set("longer text") },
		func() { e.Left() },
		func() { e.Left() },
		func() { e.DeleteBackward() },
		func() { e.Clear() },
		func() { e.DeleteForward() },
		func() { e.End() },
		func() { e.Home() },
	}
	for i, op := range ops {
		op()
		if e.Cursor() < 0 || e.Cursor() > e.Len() {
			t.Fatalf("op %d broke cursor invariant: cursor=%d len=%d", i, e.Cursor(), e.Len())
		}
	}
}
