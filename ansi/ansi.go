// Package ansi defines the escape sequences used to style and position
// terminal output. Styles are plain strings so callers can pass them
// through untouched; the renderer only ever emits a style before a
// segment and a reset after it.
package ansi

import "fmt"

// Style is an SGR prefix sequence. The empty Style renders nothing.
type Style string

const (
	Reset   Style = "\x1b[m"
	Bold    Style = "\x1b[1m"
	Dim     Style = "\x1b[2m"
	Reverse Style = "\x1b[7m"

	FgBlack   Style = "\x1b[30m"
	FgRed     Style = "\x1b[31m"
	FgGreen   Style = "\x1b[32m"
	FgYellow  Style = "\x1b[33m"
	FgBlue    Style = "\x1b[34m"
	FgMagenta Style = "\x1b[35m"
	FgCyan    Style = "\x1b[36m"
	FgWhite   Style = "\x1b[37m"

	FgBrightBlack   Style = "\x1b[90m"
	FgBrightRed     Style = "\x1b[91m"
	FgBrightGreen   Style = "\x1b[92m"
	FgBrightYellow  Style = "\x1b[93m"
	FgBrightBlue    Style = "\x1b[94m"
	FgBrightMagenta Style = "\x1b[95m"
	FgBrightCyan    Style = "\x1b[96m"
	FgBrightWhite   Style = "\x1b[97m"
)

const (
	ShowCursor = "\x1b[?25h"
	HideCursor = "\x1b[?25l"
	ClearLine  = "\x1b[2K"
	SaveCursor = "\x1b[s"
	LoadCursor = "\x1b[u"

	ClearScreen    = "\x1b[2J"
	AltScreenEnter = "\x1b[?1049h"
	AltScreenExit  = "\x1b[?1049l"
)

// FgRGB returns a 24-bit foreground style.
func FgRGB(r, g, b uint8) Style {
	return Style(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b))
}

// BgRGB returns a 24-bit background style.
func BgRGB(r, g, b uint8) Style {
	return Style(fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b))
}

// Position returns the sequence moving the cursor to a 1-indexed
// row and column.
func Position(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}
