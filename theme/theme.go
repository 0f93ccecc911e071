// Package theme resolves the color and attribute names used in the
// config file into ansi styles.
package theme

import (
	"sort"
	"strings"

	"parley/ansi"
)

var named = map[string]ansi.Style{
	"bold":    ansi.Bold,
	"dim":     ansi.Dim,
	"reverse": ansi.Reverse,

	"black":   ansi.FgBlack,
	"red":     ansi.FgRed,
	"green":   ansi.FgGreen,
	"yellow":  ansi.FgYellow,
	"blue":    ansi.FgBlue,
	"magenta": ansi.FgMagenta,
	"cyan":    ansi.FgCyan,
	"white":   ansi.FgWhite,

	"bright-black":   ansi.FgBrightBlack,
	"bright-red":     ansi.FgBrightRed,
	"bright-green":   ansi.FgBrightGreen,
	"bright-yellow":  ansi.FgBrightYellow,
	"bright-blue":    ansi.FgBrightBlue,
	"bright-magenta": ansi.FgBrightMagenta,
	"bright-cyan":    ansi.FgBrightCyan,
	"bright-white":   ansi.FgBrightWhite,
}

// Style resolves a style description like "red", "bold+cyan",
// "#ff8800" or "bg#223344". Unknown parts are ignored; an empty or
// unresolvable description yields the empty style.
func Style(desc string) ansi.Style {
	var out ansi.Style
	for _, part := range strings.Split(desc, "+") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if s, ok := named[part]; ok {
			out += s
			continue
		}
		if rest, isBg := strings.CutPrefix(part, "bg#"); isBg {
			if r, g, b, ok := hex(rest); ok {
				out += ansi.BgRGB(r, g, b)
			}
			continue
		}
		if r, g, b, ok := hex(part); ok {
			out += ansi.FgRGB(r, g, b)
		}
	}
	return out
}

// Names returns the recognized style names, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hex parses "#rrggbb" or "rrggbb".
func hex(s string) (r, g, b uint8, ok bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	var vals [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		vals[i] = hi<<4 | lo
	}
	return vals[0], vals[1], vals[2], true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
