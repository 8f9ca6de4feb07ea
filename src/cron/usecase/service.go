package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MMN3003/swapr-metrics/src/cron/domain"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/google/uuid"
)

var _ domain.CronUseCase = (*Service)(nil)

// DefaultStaleAfter releases locks left behind by a process that died mid-run.
const DefaultStaleAfter = 30 * time.Minute

type Service struct {
	cronRepo   domain.CronRepository
	staleAfter time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

func NewService(cronRepo domain.CronRepository, logg *logger.Logger) *Service {
	return &Service{
		cronRepo:   cronRepo,
		staleAfter: DefaultStaleAfter,
		now:        time.Now,
		logger:     logg,
	}
}

func (s *Service) CreateCron(ctx context.Context, id uuid.UUID) error {
	_, err := s.cronRepo.SaveCron(ctx, &domain.Cron{ID: id})
	if !errors.Is(err, domain.ErrLocked) {
		return err
	}

	held, getErr := s.cronRepo.GetCronByID(ctx, id)
	if getErr != nil || held == nil || s.now().Sub(held.CreatedAt) < s.staleAfter {
		return err
	}
	s.logger.WithField("cron_id", id.String()).Warnf("releasing stale lock taken at %s", held.CreatedAt.Format(time.RFC3339))
	if err := s.cronRepo.DeleteCron(ctx, id); err != nil {
		return err
	}
	_, err = s.cronRepo.SaveCron(ctx, &domain.Cron{ID: id})
	return err
}

func (s *Service) DeleteCron(ctx context.Context, id uuid.UUID) error {
	return s.cronRepo.DeleteCron(ctx, id)
}

// RunLocked runs job unless another run holds id. A skipped run returns ErrLocked.
func (s *Service) RunLocked(ctx context.Context, id uuid.UUID, job func(context.Context) error) error {
	if err := s.CreateCron(ctx, id); err != nil {
		return err
	}
	jobErr := job(ctx)
	if err := s.DeleteCron(context.WithoutCancel(ctx), id); err != nil {
		return errors.Join(jobErr, fmt.Errorf("release lock %s: %w", id, err))
	}
	return jobErr
}
