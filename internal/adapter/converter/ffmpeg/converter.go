package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"github.com/bnema/swapaudio/internal/domain"
	"github.com/bnema/swapaudio/internal/infrastructure/logger"
	"github.com/bnema/swapaudio/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains a null byte")
	ErrNoOutput    = errors.New("ffmpeg exited without writing output")
)

type Converter struct {
	ffmpegPath  string
	ffprobePath string
}

func NewConverter(ffmpegPath, ffprobePath string) *Converter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Converter{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath}
}

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

// Remux keeps the first video stream untouched and replaces the audio with
// the first audio stream of audioPath encoded as AAC.
func (c *Converter) Remux(ctx context.Context, videoPath, audioPath, outputPath string) (string, error) {
	if err := validatePath(videoPath); err != nil {
		return "", fmt.Errorf("invalid video path: %w", err)
	}
	if err := validatePath(audioPath); err != nil {
		return "", fmt.Errorf("invalid audio path: %w", err)
	}
	if err := validatePath(outputPath); err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}

	if err := c.run(ctx, c.ffmpegPath, remuxArgs(videoPath, audioPath, outputPath)); err != nil {
		return "", err
	}
	if err := checkOutput(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

func remuxArgs(videoPath, audioPath, outputPath string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", "aac",
		"-shortest",
		"-y", outputPath,
	}
}

func (c *Converter) Thumbnail(ctx context.Context, videoPath, outputPath string, at time.Duration, size domain.FrameSize) (string, error) {
	if err := validatePath(videoPath); err != nil {
		return "", fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(outputPath); err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}

	if err := c.run(ctx, c.ffmpegPath, thumbnailArgs(videoPath, outputPath, at, size)); err != nil {
		return "", err
	}
	// Seeking past the end exits cleanly without a frame.
	if err := checkOutput(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

func thumbnailArgs(videoPath, outputPath string, at time.Duration, size domain.FrameSize) []string {
	args := ffmpeggo.Input(videoPath, ffmpeggo.KwArgs{"ss": formatSeconds(at)}).
		Filter("scale", ffmpeggo.Args{fmt.Sprintf("%d:%d", size.Width, size.Height)}).
		Output(outputPath, ffmpeggo.KwArgs{"vframes": "1", "q:v": "2"}).
		OverWriteOutput().
		GetArgs()
	return append([]string{"-hide_banner", "-loglevel", "error"}, args...)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

func (c *Converter) Probe(ctx context.Context, path string) (*domain.ProbeResult, error) {
	if err := validatePath(path); err != nil {
		return nil, fmt.Errorf("invalid input path: %w", err)
	}

	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}
	cmd := exec.CommandContext(ctx, c.ffprobePath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %s", diagnostic(&stderr, err))
	}

	var result domain.ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &result, nil
}

func (c *Converter) run(ctx context.Context, bin string, args []string) error {
	logger.Debug.Printf("exec %s %s", bin, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("ffmpeg interrupted: %w", ctxErr)
		}
		return errors.New(diagnostic(&stderr, err))
	}
	return nil
}

// diagnostic returns the last non-empty stderr line, which is where ffmpeg
// prints the reason it gave up.
func diagnostic(stderr *bytes.Buffer, runErr error) string {
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return runErr.Error()
}

func checkOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return ErrNoOutput
	}
	return nil
}

var _ port.Transcoder = (*Converter)(nil)
