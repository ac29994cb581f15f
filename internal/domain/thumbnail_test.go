package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThumbnailOffset(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     time.Duration
	}{
		{name: "unknown duration keeps default", duration: 0, want: 10 * time.Second},
		{name: "long video keeps default", duration: 2 * time.Minute, want: 10 * time.Second},
		{name: "exactly ten seconds clamps inside", duration: 10 * time.Second, want: 9500 * time.Millisecond},
		{name: "short video clamps to last frames", duration: 4 * time.Second, want: 3500 * time.Millisecond},
		{name: "tiny video seeks to start", duration: 300 * time.Millisecond, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThumbnailOffset(tt.duration))
		})
	}
}

func TestFrameSize_String(t *testing.T) {
	assert.Equal(t, "405x225", DefaultThumbnailSize.String())
}
