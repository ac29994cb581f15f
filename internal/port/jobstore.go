package port

import (
	"time"

	"github.com/bnema/swapaudio/internal/domain"
)

type JobStore interface {
	Create(job *domain.ProcessingJob) error
	Update(job *domain.ProcessingJob) error
	Get(id string) (*domain.ProcessingJob, error)
	ListFinishedBefore(cutoff time.Time) ([]*domain.ProcessingJob, error)
	Delete(id string) error
}
