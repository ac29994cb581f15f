package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/swapaudio/internal/domain"
	"github.com/bnema/swapaudio/internal/port"
)

const interruptedMessage = "interrupted by server restart"

const jobColumns = `id, status, video_name, video_original_name, video_size,
	audio_name, audio_original_name, audio_size, output_name, thumbnail_name,
	error_message, created_at, started_at, completed_at`

func (s *Store) Create(job *domain.ProcessingJob) error {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, string(job.Status),
		job.Video.Name, job.Video.OriginalName, job.Video.Size,
		job.Audio.Name, job.Audio.OriginalName, job.Audio.Size,
		job.OutputName, job.ThumbnailName, job.ErrorMessage,
		toMillis(job.CreatedAt), toMillis(job.StartedAt), toMillis(job.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert job %s: %w", job.ID, err)
	}
	return nil
}

func (s *Store) Update(job *domain.ProcessingJob) error {
	ctx := context.Background()
	res, err := s.db.ExecContext(ctx, `UPDATE jobs SET
		status = ?, output_name = ?, thumbnail_name = ?, error_message = ?,
		started_at = ?, completed_at = ?
		WHERE id = ?`,
		string(job.Status), job.OutputName, job.ThumbnailName, job.ErrorMessage,
		toMillis(job.StartedAt), toMillis(job.CompletedAt), job.ID,
	)
	if err != nil {
		return fmt.Errorf("update job %s: %w", job.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) Get(id string) (*domain.ProcessingJob, error) {
	ctx := context.Background()
	row := s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *Store) ListFinishedBefore(cutoff time.Time) ([]*domain.ProcessingJob, error) {
	ctx := context.Background()
	rows, err := s.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs
		WHERE status IN (?, ?) AND completed_at > 0 AND completed_at < ?
		ORDER BY completed_at`,
		string(domain.JobStatusSucceeded), string(domain.JobStatusFailed), toMillis(cutoff),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var jobs []*domain.ProcessingJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *Store) Delete(id string) error {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	return err
}

// ResetStalled fails the jobs a previous process left pending or running.
// Nothing is retried; the uploads they referenced may already be gone.
func (s *Store) ResetStalled() (int64, error) {
	ctx := context.Background()
	res, err := s.db.ExecContext(ctx, `UPDATE jobs SET status = ?, error_message = ?, completed_at = ?
		WHERE status IN (?, ?)`,
		string(domain.JobStatusFailed), interruptedMessage, toMillis(time.Now()),
		string(domain.JobStatusPending), string(domain.JobStatusRunning),
	)
	if err != nil {
		return 0, fmt.Errorf("reset stalled jobs: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (*domain.ProcessingJob, error) {
	var (
		job                             domain.ProcessingJob
		status                          string
		createdAt, startedAt, completed int64
	)
	err := row.Scan(
		&job.ID, &status,
		&job.Video.Name, &job.Video.OriginalName, &job.Video.Size,
		&job.Audio.Name, &job.Audio.OriginalName, &job.Audio.Size,
		&job.OutputName, &job.ThumbnailName, &job.ErrorMessage,
		&createdAt, &startedAt, &completed,
	)
	if err != nil {
		return nil, err
	}
	job.Status = domain.JobStatus(status)
	job.Video.Role = domain.AssetRoleVideo
	job.Audio.Role = domain.AssetRoleAudio
	job.CreatedAt = fromMillis(createdAt)
	job.StartedAt = fromMillis(startedAt)
	job.CompletedAt = fromMillis(completed)
	return &job, nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

var _ port.JobStore = (*Store)(nil)
