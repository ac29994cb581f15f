package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// ProcessingJob is one request's unit of work. The executor owns it for the
// duration of the request.
type ProcessingJob struct {
	ID            string        `json:"id"`
	Video         UploadedAsset `json:"video"`
	Audio         UploadedAsset `json:"audio"`
	OutputName    string        `json:"output_name"`
	ThumbnailName string        `json:"thumbnail_name"`
	Status        JobStatus     `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	StartedAt     time.Time     `json:"started_at"`
	CompletedAt   time.Time     `json:"completed_at"`
}

func NewProcessingJob(video, audio UploadedAsset) *ProcessingJob {
	return &ProcessingJob{
		ID:        uuid.NewString(),
		Video:     video,
		Audio:     audio,
		Status:    JobStatusPending,
		CreatedAt: time.Now(),
	}
}

func (j *ProcessingJob) Start(now time.Time) error {
	if j.Status != JobStatusPending {
		return fmt.Errorf("job %s: cannot start from %s", j.ID, j.Status)
	}
	j.Status = JobStatusRunning
	j.StartedAt = now
	return nil
}

func (j *ProcessingJob) Succeed(now time.Time) error {
	if j.Status != JobStatusRunning {
		return fmt.Errorf("job %s: cannot succeed from %s", j.ID, j.Status)
	}
	j.Status = JobStatusSucceeded
	j.CompletedAt = now
	return nil
}

func (j *ProcessingJob) Fail(err error, now time.Time) {
	j.Status = JobStatusFailed
	j.ErrorMessage = err.Error()
	j.CompletedAt = now
}

func (j *ProcessingJob) IsTerminal() bool {
	return j.Status == JobStatusSucceeded || j.Status == JobStatusFailed
}
