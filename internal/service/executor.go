package service

import (
	"context"
	"time"

	"github.com/bnema/swapaudio/internal/domain"
	"github.com/bnema/swapaudio/internal/infrastructure/logger"
	"github.com/bnema/swapaudio/internal/port"
)

// Executor runs one processing job from staged inputs to published
// artifacts. It never retries.
type Executor struct {
	transcoder  port.Transcoder
	area        port.StorageArea
	jobs        port.JobStore
	keepUploads bool
	now         func() time.Time
}

// NewExecutor builds an executor. jobs may be nil when no ledger is kept.
func NewExecutor(transcoder port.Transcoder, area port.StorageArea, jobs port.JobStore, keepUploads bool) *Executor {
	return &Executor{
		transcoder:  transcoder,
		area:        area,
		jobs:        jobs,
		keepUploads: keepUploads,
		now:         time.Now,
	}
}

func (e *Executor) Process(ctx context.Context, job *domain.ProcessingJob) (*domain.JobResult, error) {
	defer e.releaseInputs(job)

	if err := job.Start(e.now()); err != nil {
		return nil, err
	}
	e.record(job, e.create)
	logger.Info.Printf("job %s: started (video=%s, audio=%s)", job.ID, job.Video.Name, job.Audio.Name)

	outputName, outputPath := e.area.Reserve(domain.PurposeProcessed, ".mp4")
	job.OutputName = outputName

	if _, err := e.transcoder.Remux(ctx, job.Video.Path, job.Audio.Path, outputPath); err != nil {
		if rmErr := e.area.Remove(outputName); rmErr != nil {
			logger.Warn.Printf("job %s: remove partial output: %v", job.ID, rmErr)
		}
		job.OutputName = ""
		return nil, e.fail(job, &domain.TranscodeError{Err: e.redact(err)})
	}

	offset := domain.DefaultThumbnailOffset
	if probe, err := e.transcoder.Probe(ctx, outputPath); err != nil {
		logger.Warn.Printf("job %s: probe %s: %v", job.ID, outputName, err)
	} else {
		offset = domain.ThumbnailOffset(probe.Duration())
	}

	thumbName := domain.ThumbnailName(outputName)
	thumbPath := e.area.Path(thumbName)
	job.ThumbnailName = thumbName

	if _, err := e.transcoder.Thumbnail(ctx, outputPath, thumbPath, offset, domain.DefaultThumbnailSize); err != nil {
		job.ThumbnailName = ""
		return nil, e.fail(job, &domain.ThumbnailError{Err: e.redact(err)})
	}

	if err := job.Succeed(e.now()); err != nil {
		return nil, err
	}
	e.record(job, e.update)
	logger.Info.Printf("job %s: succeeded in %s (output=%s)", job.ID, job.CompletedAt.Sub(job.StartedAt).Round(time.Millisecond), outputName)

	return &domain.JobResult{
		Job:       job,
		Video:     domain.NewArtifact(outputName, outputPath, domain.ArtifactKindVideo),
		Thumbnail: domain.NewArtifact(thumbName, thumbPath, domain.ArtifactKindImage),
	}, nil
}

func (e *Executor) fail(job *domain.ProcessingJob, err error) error {
	job.Fail(err, e.now())
	e.record(job, e.update)
	logger.Error.Printf("job %s: failed: %v", job.ID, err)
	return err
}

func (e *Executor) create(job *domain.ProcessingJob) error { return e.jobs.Create(job) }
func (e *Executor) update(job *domain.ProcessingJob) error { return e.jobs.Update(job) }

// record writes job to the ledger. The ledger is advisory, so a failed write
// only gets logged.
func (e *Executor) record(job *domain.ProcessingJob, write func(*domain.ProcessingJob) error) {
	if e.jobs == nil {
		return
	}
	if err := write(job); err != nil {
		logger.Error.Printf("job %s: ledger write (%s): %v", job.ID, job.Status, err)
	}
}

func (e *Executor) releaseInputs(job *domain.ProcessingJob) {
	if e.keepUploads {
		return
	}
	for _, asset := range []domain.UploadedAsset{job.Video, job.Audio} {
		if asset.Name == "" {
			continue
		}
		if err := e.area.Remove(asset.Name); err != nil {
			logger.Warn.Printf("job %s: remove input %s: %v", job.ID, asset.Name, err)
		}
	}
}

func (e *Executor) redact(err error) error {
	msg := domain.RedactDir(err.Error(), e.area.Dir())
	if msg == err.Error() {
		return err
	}
	return &redactedError{msg: msg, err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
