package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/snapshot/domain"
	"github.com/google/uuid"
)

var _ domain.SnapshotUseCase = (*Service)(nil)

type Service struct {
	repo      domain.SnapshotRepository
	reporters map[domain.Kind]domain.Reporter
	now       func() time.Time
	logger    *logger.Logger
}

func NewService(repo domain.SnapshotRepository, reporters map[domain.Kind]domain.Reporter, logg *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		reporters: reporters,
		now:       time.Now,
		logger:    logg,
	}
}

// Record computes every report and stores each one that succeeded. A failing
// report does not prevent the others from being stored.
func (s *Service) Record(ctx context.Context) error {
	kinds := make([]domain.Kind, 0, len(s.reporters))
	for k := range s.reporters {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var errs []error
	for _, kind := range kinds {
		if err := s.record(ctx, kind); err != nil {
			s.logger.WithField("kind", string(kind)).Errorf("snapshot failed: %v", err)
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) record(ctx context.Context, kind domain.Kind) error {
	payload, err := s.reporters[kind](ctx)
	if err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	snap := &domain.Snapshot{
		ID:      uuid.New(),
		Kind:    kind,
		Body:    body,
		TakenAt: s.now().UTC(),
	}
	if err := s.repo.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.logger.WithFields(map[string]interface{}{
		"kind":  string(kind),
		"id":    snap.ID.String(),
		"bytes": len(body),
	}).Infof("snapshot stored")
	return nil
}

func (s *Service) Latest(ctx context.Context, kind domain.Kind) (*domain.Snapshot, error) {
	if _, ok := s.reporters[kind]; !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	return s.repo.LatestSnapshot(ctx, kind)
}
