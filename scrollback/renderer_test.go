package scrollback

import (
	"bytes"
	"strings"
	"testing"

	"parley/ansi"
)

func TestRenderIdempotent(t *testing.T) {
	l := NewLog(16)
	l.Append(Message{NewSegment("first message", "")})
	l.Append(Message{NewSegment("second message", ansi.FgGreen)})

	var a, b bytes.Buffer
	NewRenderer(&a, NewSegment(" > ", "")).RenderLog(l, 40, 12)
	NewRenderer(&b, NewSegment(" > ", "")).RenderLog(l, 40, 12)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("rendering identical state twice produced different output")
	}
}

func TestRenderNewestNearestPrompt(t *testing.T) {
	l := NewLog(16)
	l.Append(Message{NewSegment("older", "")})
	l.Append(Message{NewSegment("newer", "")})

	var buf bytes.Buffer
	NewRenderer(&buf, NewSegment(" > ", "")).RenderLog(l, 40, 10)
	out := buf.String()

	// Prompt sits on row 10; newest message on row 9, older on row 8.
	iNewer := strings.Index(out, ansi.Position(9, 1)+"newer")
	iOlder := strings.Index(out, ansi.Position(8, 1)+"older")
	if iNewer < 0 || iOlder < 0 {
		t.Fatalf("expected positioned messages in output %q", out)
	}
}

func TestRenderOmitsPartialTopMessage(t *testing.T) {
	l := NewLog(16)
	l.Append(Message{NewSegment(strings.Repeat("x", 100), "")}) // spans 10 rows at width 10
	l.Append(Message{NewSegment("recent", "")})

	var buf bytes.Buffer
	NewRenderer(&buf, NewSegment("> ", "")).RenderLog(l, 10, 5)
	out := buf.String()
	if strings.Contains(out, "x") {
		t.Error("message that cannot fit whole should be omitted for the frame")
	}
	if !strings.Contains(out, "recent") {
		t.Error("fitting message should still render")
	}
}

func TestRenderTooSmall(t *testing.T) {
	l := NewLog(4)
	l.Append(Message{NewSegment("hi", "")})
	var buf bytes.Buffer
	NewRenderer(&buf, NewSegment("> ", "")).RenderLog(l, 40, 1)
	if buf.Len() != 0 {
		t.Errorf("render with one row should be a no-op, wrote %q", buf.String())
	}
}

func TestRenderStyledSegment(t *testing.T) {
	l := NewLog(4)
	l.Append(Message{NewSegment("err", ansi.FgRed), NewSegment(" detail", "")})
	var buf bytes.Buffer
	NewRenderer(&buf, NewSegment("> ", "")).RenderLog(l, 40, 10)
	out := buf.String()
	want := string(ansi.FgRed) + "err" + string(ansi.Reset) + " detail"
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output %q", want, out)
	}
}

func TestRenderPadsRow(t *testing.T) {
	l := NewLog(4)
	l.Append(Message{NewSegment("abc", "")})
	var buf bytes.Buffer
	NewRenderer(&buf, NewSegment("> ", "")).RenderLog(l, 10, 10)
	if !strings.Contains(buf.String(), "abc"+strings.Repeat(" ", 7)) {
		t.Error("row should be padded to the full width")
	}
}

func TestPromptCursorColumn(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, NewSegment(" > ", ""))
	r.RenderPrompt("status", 3, 40, 12)
	out := buf.String()
	if !strings.Contains(out, " > status") {
		t.Fatalf("expected prompt and line in %q", out)
	}
	// Cursor column is len(prompt) + cursor + 1.
	if !strings.HasSuffix(out, ansi.Position(12, 7)) {
		t.Errorf("expected cursor repositioned to column 7, got %q", out)
	}
}

func TestPromptWindowsLongLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, NewSegment("> ", ""))
	line := strings.Repeat("abcdefghij", 10) // 100 chars
	r.RenderPrompt(line, 50, 40, 12)
	out := buf.String()
	// Usable width is 40-(2+1)=37; window centers on the cursor.
	if strings.Contains(out, line) {
		t.Error("full line should not fit; expected a window")
	}
	left := 50 - 37/2
	if !strings.Contains(out, line[left:left+37]) {
		t.Errorf("expected window %q in %q", line[left:left+37], out)
	}
}

func TestPromptSkipsNarrowTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, NewSegment(" > ", ""))
	r.RenderPrompt("hello", 5, 10, 12)
	if buf.Len() != 0 {
		t.Errorf("narrow terminal should skip prompt render, wrote %q", buf.String())
	}
}
