package service

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/swapaudio/internal/domain"
	"github.com/bnema/swapaudio/internal/infrastructure/logger"
)

type Processor interface {
	Process(ctx context.Context, job *domain.ProcessingJob) (*domain.JobResult, error)
}

type outcome struct {
	result *domain.JobResult
	err    error
}

type task struct {
	job  *domain.ProcessingJob
	done chan outcome
}

// WorkerPool runs at most workers jobs at a time and holds up to queueSize
// more. Anything beyond that is turned away with domain.ErrBusy.
type WorkerPool struct {
	processor Processor
	workers   int
	tasks     chan *task

	mu       sync.RWMutex
	closed   bool
	stopping atomic.Bool
	started  bool
	group    errgroup.Group
}

func NewWorkerPool(processor Processor, workers, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &WorkerPool{
		processor: processor,
		workers:   workers,
		tasks:     make(chan *task, queueSize),
	}
}

// Start launches the workers. Jobs inherit ctx values but not its
// cancellation: an accepted job always runs to completion.
func (wp *WorkerPool) Start(ctx context.Context) {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.started {
		return
	}
	wp.started = true

	jobCtx := context.WithoutCancel(ctx)
	for i := range wp.workers {
		wp.group.Go(func() error {
			wp.runWorker(jobCtx, i)
			return nil
		})
	}
	logger.Info.Printf("started %d workers (queue size %d)", wp.workers, cap(wp.tasks))
}

func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
	for t := range wp.tasks {
		if wp.stopping.Load() {
			t.done <- outcome{err: domain.ErrShuttingDown}
			continue
		}
		logger.Debug.Printf("worker %d: processing job %s", id, t.job.ID)
		result, err := wp.processor.Process(ctx, t.job)
		t.done <- outcome{result: result, err: err}
	}
	logger.Debug.Printf("worker %d shutting down", id)
}

// Submit hands job to the pool and waits for its outcome. If ctx ends first
// Submit returns ctx.Err() while the job keeps running.
func (wp *WorkerPool) Submit(ctx context.Context, job *domain.ProcessingJob) (*domain.JobResult, error) {
	t := &task{job: job, done: make(chan outcome, 1)}

	wp.mu.RLock()
	if wp.closed {
		wp.mu.RUnlock()
		return nil, domain.ErrShuttingDown
	}
	select {
	case wp.tasks <- t:
	default:
		wp.mu.RUnlock()
		logger.Warn.Printf("job %s rejected: queue full", job.ID)
		return nil, domain.ErrBusy
	}
	wp.mu.RUnlock()

	select {
	case out := <-t.done:
		return out.result, out.err
	case <-ctx.Done():
		logger.Warn.Printf("job %s: client gone, job continues", job.ID)
		return nil, ctx.Err()
	}
}

// Stop refuses new jobs, answers queued ones with domain.ErrShuttingDown and
// waits for running ones until ctx is done.
func (wp *WorkerPool) Stop(ctx context.Context) error {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		wp.stopping.Store(true)
		close(wp.tasks)
	}
	started := wp.started
	wp.mu.Unlock()

	if !started {
		for t := range wp.tasks {
			t.done <- outcome{err: domain.ErrShuttingDown}
		}
		return nil
	}

	done := make(chan struct{})
	go func() {
		_ = wp.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info.Printf("worker pool stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
