package domain

import (
	"fmt"
	"time"
)

type FrameSize struct {
	Width  int
	Height int
}

func (s FrameSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

var (
	DefaultThumbnailOffset = 10 * time.Second
	DefaultThumbnailSize   = FrameSize{Width: 405, Height: 225}
)

// shortVideoMargin keeps the seek point inside the last frames of a clip
// shorter than DefaultThumbnailOffset.
const shortVideoMargin = 500 * time.Millisecond

// ThumbnailOffset picks the seek point for the thumbnail frame. An unknown
// duration (zero) keeps the default offset and leaves the boundary to the
// transcoder; a shorter clip is clamped to its last frames.
func ThumbnailOffset(duration time.Duration) time.Duration {
	if duration <= 0 || duration > DefaultThumbnailOffset {
		return DefaultThumbnailOffset
	}
	if duration <= shortVideoMargin {
		return 0
	}
	return duration - shortVideoMargin
}
