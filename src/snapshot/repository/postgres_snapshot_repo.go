package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/snapshot/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ domain.SnapshotRepository = (*SnapshotRepo)(nil)

type ReportSnapshot struct {
	ID      uuid.UUID `gorm:"type:uuid;primarykey"`
	Kind    string    `gorm:"size:64;not null;index:idx_snapshot_kind_taken,priority:1"`
	Body    []byte    `gorm:"type:jsonb;not null"`
	TakenAt time.Time `gorm:"not null;index:idx_snapshot_kind_taken,priority:2,sort:desc"`
}

type SnapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSnapshotRepo(db *gorm.DB, log *logger.Logger) (*SnapshotRepo, error) {
	if err := db.AutoMigrate(&ReportSnapshot{}); err != nil {
		return nil, fmt.Errorf("migrate report snapshots: %w", err)
	}
	return &SnapshotRepo{db: db, log: log}, nil
}

func (r *SnapshotRepo) SaveSnapshot(ctx context.Context, s *domain.Snapshot) error {
	model := ReportSnapshot{
		ID:      s.ID,
		Kind:    string(s.Kind),
		Body:    s.Body,
		TakenAt: s.TakenAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *SnapshotRepo) LatestSnapshot(ctx context.Context, kind domain.Kind) (*domain.Snapshot, error) {
	var m ReportSnapshot
	err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("taken_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.Snapshot{
		ID:      m.ID,
		Kind:    domain.Kind(m.Kind),
		Body:    m.Body,
		TakenAt: m.TakenAt,
	}, nil
}
