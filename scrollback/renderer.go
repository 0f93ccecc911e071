package scrollback

import (
	"io"
	"strings"

	"parley/ansi"
)

// Renderer draws the message log and the prompt line. The log fills
// the rows above the prompt, newest message nearest it; the bottom row
// belongs to the prompt. Output is built in one buffer and written in
// a single call to avoid flicker.
type Renderer struct {
	out    io.Writer
	prompt Segment
}

// NewRenderer creates a renderer writing to out with the given prompt.
func NewRenderer(out io.Writer, prompt Segment) *Renderer {
	return &Renderer{out: out, prompt: prompt}
}

// SetPrompt replaces the prompt segment.
func (r *Renderer) SetPrompt(prompt Segment) {
	r.prompt = prompt
}

// RenderLog redraws the scrollback region for a terminal of the given
// dimensions. Messages are laid out newest to oldest walking upward
// from the row above the prompt; a message that would cross the top of
// the screen is omitted entirely for this frame. Requires at least two
// rows, otherwise nothing is drawn.
func (r *Renderer) RenderLog(log *Log, cols, rows int) {
	if rows < 2 || cols < 1 {
		return
	}
	var b strings.Builder
	b.WriteString(ansi.HideCursor)
	row := rows
	for i := 0; i < log.Len(); i++ {
		m := log.At(i)
		row -= m.Span(cols)
		if row < 1 {
			break
		}
		b.WriteString(ansi.Position(row, 1))
		written := 0
		for _, seg := range m {
			if seg.Style != "" {
				b.WriteString(string(seg.Style))
				b.WriteString(seg.Text)
				b.WriteString(string(ansi.Reset))
			} else {
				b.WriteString(seg.Text)
			}
			written += len(seg.Text)
		}
		// Pad to a full multiple of the width so stale characters
		// from a previous, longer render are erased.
		if rem := written % cols; rem != 0 || written == 0 {
			b.WriteString(strings.Repeat(" ", cols-rem))
		}
	}
	b.WriteString(ansi.ShowCursor)
	io.WriteString(r.out, b.String())
}

// RenderPrompt redraws the prompt row for the current edit line. When
// the line is wider than the usable area a window around the cursor is
// shown instead, keeping the cursor visible. Terminals too narrow to
// be useful are left alone.
func (r *Renderer) RenderPrompt(line string, cursor, cols, rows int) {
	if rows < 1 {
		return
	}
	usable := cols - (len(r.prompt.Text) + 1)
	if usable < 7 {
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	if len(line) > usable {
		left := cursor - usable/2
		if left > len(line)-usable {
			left = len(line) - usable
		}
		if left < 0 {
			left = 0
		}
		line = line[left : left+usable]
		cursor -= left
	}
	var b strings.Builder
	b.WriteString(ansi.Position(rows, 1))
	b.WriteString(ansi.ClearLine)
	if r.prompt.Style != "" {
		b.WriteString(string(r.prompt.Style))
		b.WriteString(r.prompt.Text)
		b.WriteString(string(ansi.Reset))
	} else {
		b.WriteString(r.prompt.Text)
	}
	b.WriteString(line)
	b.WriteString(ansi.Position(rows, len(r.prompt.Text)+cursor+1))
	io.WriteString(r.out, b.String())
}
