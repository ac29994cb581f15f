package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"

	"github.com/bnema/swapaudio/internal/domain"
	"github.com/bnema/swapaudio/internal/infrastructure/logger"
	"github.com/bnema/swapaudio/internal/port"
)

// RetentionPolicy decides how long Storage Area files live. ok is false when
// nothing should ever be removed.
type RetentionPolicy interface {
	Cutoff(now time.Time) (cutoff time.Time, ok bool)
}

type KeepForever struct{}

func (KeepForever) Cutoff(time.Time) (time.Time, bool) { return time.Time{}, false }

// MaxAge expires files last modified more than Age ago.
type MaxAge struct {
	Age time.Duration
}

func (p MaxAge) Cutoff(now time.Time) (time.Time, bool) {
	if p.Age <= 0 {
		return time.Time{}, false
	}
	return now.Add(-p.Age), true
}

// NewRetentionPolicy maps the configured hours to a policy; zero keeps
// everything.
func NewRetentionPolicy(hours int) RetentionPolicy {
	if hours <= 0 {
		return KeepForever{}
	}
	return MaxAge{Age: time.Duration(hours) * time.Hour}
}

type SweepReport struct {
	Files int
	Bytes int64
	Jobs  int
}

type Sweeper struct {
	area   port.StorageArea
	jobs   port.JobStore
	policy RetentionPolicy
}

// NewSweeper builds a sweeper. jobs may be nil when no ledger is kept.
func NewSweeper(area port.StorageArea, jobs port.JobStore, policy RetentionPolicy) *Sweeper {
	return &Sweeper{area: area, jobs: jobs, policy: policy}
}

// Sweep removes expired files and the ledger rows of jobs that finished
// before the same cutoff. Individual failures are logged and skipped.
func (s *Sweeper) Sweep(now time.Time) (SweepReport, error) {
	var report SweepReport

	cutoff, ok := s.policy.Cutoff(now)
	if !ok {
		return report, nil
	}

	files, err := s.area.List()
	if err != nil {
		return report, fmt.Errorf("list storage area: %w", err)
	}

	expired := lo.Filter(files, func(f domain.StoredFile, _ int) bool {
		return f.ModTime.Before(cutoff)
	})
	removed := make([]domain.StoredFile, 0, len(expired))
	for _, f := range expired {
		if err := s.area.Remove(f.Name); err != nil {
			logger.Warn.Printf("retention: remove %s: %v", f.Name, err)
			continue
		}
		removed = append(removed, f)
	}
	report.Files = len(removed)
	report.Bytes = lo.SumBy(removed, func(f domain.StoredFile) int64 { return f.Size })

	if s.jobs == nil {
		return report, nil
	}

	finished, err := s.jobs.ListFinishedBefore(cutoff)
	if err != nil {
		return report, fmt.Errorf("list finished jobs: %w", err)
	}
	var errs []error
	for _, job := range finished {
		if err := s.jobs.Delete(job.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete job %s: %w", job.ID, err))
			continue
		}
		report.Jobs++
	}
	return report, errors.Join(errs...)
}

// RetentionScheduler runs a Sweeper on a cron schedule.
type RetentionScheduler struct {
	cron    *cron.Cron
	sweeper *Sweeper
}

func NewRetentionScheduler(sweeper *Sweeper, schedule string) (*RetentionScheduler, error) {
	s := &RetentionScheduler{cron: cron.New(), sweeper: sweeper}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *RetentionScheduler) run() {
	report, err := s.sweeper.Sweep(time.Now())
	if err != nil {
		logger.Error.Printf("retention sweep: %v", err)
	}
	if report.Files > 0 || report.Jobs > 0 {
		logger.Info.Printf("retention sweep: removed %d files (%d bytes), %d jobs", report.Files, report.Bytes, report.Jobs)
	}
}

func (s *RetentionScheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep until ctx is done.
func (s *RetentionScheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return errors.New("retention stop timeout")
	}
}
