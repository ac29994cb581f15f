package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain upload name", input: "holiday clip.mp4", expected: "holiday clip.mp4"},
		{name: "empty", input: "", expected: ""},
		{name: "unicode kept", input: "bande-son café 音楽.wav", expected: "bande-son café 音楽.wav"},
		{name: "quotes kept", input: `track "final".mp3`, expected: `track "final".mp3`},
		{name: "newline escaped", input: "a.mp4\nERROR: forged", expected: `a.mp4\nERROR: forged`},
		{name: "crlf escaped", input: "a\r\nb", expected: `a\r\nb`},
		{name: "tab escaped", input: "a\tb", expected: `a\tb`},
		{name: "null byte escaped", input: "a\x00b", expected: `a\x00b`},
		{name: "ansi escape escaped", input: "\x1b[31mred", expected: `\x1b[31mred`},
		{name: "DEL escaped", input: "x\x7fy", expected: `x\x7fy`},
		{name: "C1 control escaped", input: "x\u0085y", expected: `x\x85y`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeForLog(tt.input))
		})
	}
}

func TestSanitizeForLog_NoRawControlCharsSurvive(t *testing.T) {
	for i := 0; i < 32; i++ {
		out := SanitizeForLog("a" + string(rune(i)) + "b")
		for _, r := range out {
			assert.False(t, r < 32, "control char 0x%02x leaked into %q", i, out)
		}
	}
}

func BenchmarkSanitizeForLog(b *testing.B) {
	inputs := map[string]string{
		"clean":  "video-1718000000000-123456789.mp4",
		"attack": "file.mp4\nERROR: fake\x1b[31mred",
	}
	for name, input := range inputs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = SanitizeForLog(input)
			}
		})
	}
}
