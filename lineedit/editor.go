// Package lineedit provides the editable command line and its history.
package lineedit

// Editor is a single-line text editor with cursor tracking. The cursor
// always sits between 0 and the text length inclusive.
type Editor struct {
	text   []byte
	cursor int
}

// New creates a new empty Editor.
func New() *Editor {
	return &Editor{}
}

// Text returns the current text.
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the length of the text.
func (e *Editor) Len() int {
	return len(e.text)
}

// Clear resets the editor to empty state.
func (e *Editor) Clear() {
	e.text = e.text[:0]
	e.cursor = 0
}

// Set replaces the text and moves the cursor to the end.
func (e *Editor) Set(text string) {
	e.text = append(e.text[:0], text...)
	e.cursor = len(e.text)
}

// Insert adds a character at the cursor position and advances past it.
func (e *Editor) Insert(ch byte) {
	e.text = append(e.text, 0)
	copy(e.text[e.cursor+1:], e.text[e.cursor:])
	e.text[e.cursor] = ch
	e.cursor++
}

// DeleteBackward removes the character before the cursor (backspace).
// Returns true if a character was deleted.
func (e *Editor) DeleteBackward() bool {
	if e.cursor == 0 {
		return false
	}
	e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
	e.cursor--
	return true
}

// DeleteForward removes the character at the cursor (delete).
// Returns true if a character was deleted.
func (e *Editor) DeleteForward() bool {
	if e.cursor >= len(e.text) {
		return false
	}
	e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
	return true
}

// Left moves the cursor one character left, clamped at the start.
func (e *Editor) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// Right moves the cursor one character right, clamped at the end.
func (e *Editor) Right() {
	if e.cursor < len(e.text) {
		e.cursor++
	}
}

// Home moves the cursor to the beginning of the line.
func (e *Editor) Home() {
	e.cursor = 0
}

// End moves the cursor to the end of the line.
func (e *Editor) End() {
	e.cursor = len(e.text)
}
