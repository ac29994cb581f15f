package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob() *ProcessingJob {
	return NewProcessingJob(
		UploadedAsset{Role: AssetRoleVideo, Name: "video-1-1.mp4"},
		UploadedAsset{Role: AssetRoleAudio, Name: "audio-1-1.mp3"},
	)
}

func TestNewProcessingJob(t *testing.T) {
	job := newTestJob()

	assert.Len(t, job.ID, 36, "ID should be a UUID")
	assert.Equal(t, JobStatusPending, job.Status)
	assert.Equal(t, AssetRoleVideo, job.Video.Role)
	assert.Equal(t, AssetRoleAudio, job.Audio.Role)
	assert.WithinDuration(t, time.Now(), job.CreatedAt, time.Second)
	assert.NotEqual(t, job.ID, newTestJob().ID)
}

func TestProcessingJob_Lifecycle(t *testing.T) {
	job := newTestJob()
	now := time.Now()

	require.NoError(t, job.Start(now))
	assert.Equal(t, JobStatusRunning, job.Status)
	assert.Equal(t, now, job.StartedAt)
	assert.False(t, job.IsTerminal())

	require.NoError(t, job.Succeed(now.Add(time.Second)))
	assert.Equal(t, JobStatusSucceeded, job.Status)
	assert.True(t, job.IsTerminal())
}

func TestProcessingJob_InvalidTransitions(t *testing.T) {
	job := newTestJob()
	assert.Error(t, job.Succeed(time.Now()), "pending job cannot succeed")

	require.NoError(t, job.Start(time.Now()))
	assert.Error(t, job.Start(time.Now()), "running job cannot start again")
}

func TestProcessingJob_Fail(t *testing.T) {
	job := newTestJob()
	require.NoError(t, job.Start(time.Now()))

	job.Fail(&TranscodeError{Err: errors.New("Invalid data found when processing input")}, time.Now())

	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, "replace audio: Invalid data found when processing input", job.ErrorMessage)
	assert.True(t, job.IsTerminal())
	assert.Error(t, job.Succeed(time.Now()), "failed job cannot succeed")
}

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("boom")

	var te *TranscodeError
	assert.True(t, errors.As(error(&TranscodeError{Err: cause}), &te))
	assert.ErrorIs(t, &TranscodeError{Err: cause}, cause)
	assert.ErrorIs(t, &ThumbnailError{Err: cause}, cause)
	assert.ErrorIs(t, &StorageError{Op: "write", Err: cause}, cause)

	assert.Equal(t, "Video or audio file missing", (&MissingInputError{Field: "audio"}).Error())
	assert.Equal(t, "custom", (&MissingInputError{Reason: "custom"}).Error())
}
