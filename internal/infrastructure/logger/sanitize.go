package logger

import (
	"fmt"
	"strings"
	"unicode"
)

var namedEscapes = map[rune]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// SanitizeForLog escapes control characters in client supplied strings
// (upload filenames, form values) so they cannot forge log lines or drive
// the terminal. Printable Unicode is kept as is.
func SanitizeForLog(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
			continue
		}
		if esc, ok := namedEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		if r <= 0xff {
			fmt.Fprintf(&b, `\x%02x`, r)
		} else {
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}
