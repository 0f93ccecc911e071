// Package scrollback holds the log of emitted messages and renders it,
// together with the live prompt, into the terminal.
package scrollback

import (
	"strings"

	"parley/ansi"
)

// Segment is a run of text with an optional style token. Segments are
// immutable once constructed; the style is passed through to the
// terminal unchanged.
type Segment struct {
	Text  string
	Style ansi.Style
}

var sanitizer = strings.NewReplacer("\n", " ", "\t", " ")

// NewSegment builds a segment, flattening newlines and tabs to spaces
// so a message always occupies a predictable number of columns.
func NewSegment(text string, style ansi.Style) Segment {
	return Segment{Text: sanitizer.Replace(text), Style: style}
}

// Message is an ordered sequence of segments forming one log entry.
type Message []Segment

// Width returns the total rendered character count of all segments.
func (m Message) Width() int {
	w := 0
	for _, seg := range m {
		w += len(seg.Text)
	}
	return w
}

// Span returns the number of terminal rows the message occupies at the
// given width. Every message takes at least one row.
func (m Message) Span(cols int) int {
	w := m.Width()
	if w <= cols {
		return 1
	}
	return (w + cols - 1) / cols
}

// Plain returns the message text without any styling.
func (m Message) Plain() string {
	var b strings.Builder
	for _, seg := range m {
		b.WriteString(seg.Text)
	}
	return b.String()
}
