package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxFilenameLength = 255

// SanitizeFilename makes name safe to quote in a Content-Disposition header.
// Separators, quotes and control characters become underscores, the result
// is capped at 255 bytes and an empty result falls back to "file".
func SanitizeFilename(name string) string {
	result := strings.Map(func(r rune) rune {
		switch {
		case r < 32, r == 127:
			return '_'
		case r == '"', r == '\\', r == '/', r == ':':
			return '_'
		}
		return r
	}, name)
	result = strings.TrimSpace(result)

	if strings.Trim(result, "_") == "" {
		return "file"
	}
	return truncateToBytes(result, maxFilenameLength)
}

func truncateToBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}

// Attachment returns a Content-Disposition value that makes browsers
// download the file under name.
func Attachment(name string) string {
	return fmt.Sprintf("attachment; filename=%q", SanitizeFilename(name))
}
