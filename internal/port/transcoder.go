package port

import (
	"context"
	"time"

	"github.com/bnema/swapaudio/internal/domain"
)

// Transcoder is the external media engine. Each call is an out-of-process
// operation that reports failure through its own diagnostic channel.
type Transcoder interface {
	// Remux writes outputPath with the first video stream of videoPath, the
	// first audio stream of audioPath (re-encoded), cut to the shorter input.
	Remux(ctx context.Context, videoPath, audioPath, outputPath string) (string, error)
	// Thumbnail writes a single frame of videoPath taken at the given offset.
	Thumbnail(ctx context.Context, videoPath, outputPath string, at time.Duration, size domain.FrameSize) (string, error)
	Probe(ctx context.Context, path string) (*domain.ProbeResult, error)
}
