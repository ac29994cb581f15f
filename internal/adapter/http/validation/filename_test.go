package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "storage name", input: "processed-1700000000000-42.mp4", expected: "processed-1700000000000-42.mp4"},
		{name: "thumbnail name", input: "processed-1-2_thumbnail.jpg", expected: "processed-1-2_thumbnail.jpg"},
		{name: "spaces kept", input: "my clip.mp4", expected: "my clip.mp4"},
		{name: "unicode kept", input: "vidéo.mp4", expected: "vidéo.mp4"},
		{name: "quotes replaced", input: `a"b.mp4`, expected: "a_b.mp4"},
		{name: "separators replaced", input: `..\..//x.mp4`, expected: ".._..__x.mp4"},
		{name: "header injection", input: "a\r\nSet-Cookie: x.jpg", expected: "a__Set-Cookie_ x.jpg"},
		{name: "empty", input: "", expected: "file"},
		{name: "only separators", input: "///", expected: "file"},
		{name: "whitespace", input: "   ", expected: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("é", 200) + ".mp4"

	got := SanitizeFilename(long)

	assert.LessOrEqual(t, len(got), maxFilenameLength)
	assert.True(t, utf8.ValidString(got))
}

func TestAttachment(t *testing.T) {
	assert.Equal(t, `attachment; filename="processed-1-2.mp4"`, Attachment("processed-1-2.mp4"))
	assert.Equal(t, `attachment; filename="a_b.jpg"`, Attachment(`a"b.jpg`))
	assert.NotContains(t, Attachment("x\ny.jpg"), "\n")
}
