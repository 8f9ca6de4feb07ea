package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MMN3003/swapr-metrics/src/cron/domain"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ domain.CronRepository = (*CronRepo)(nil)

// Cron is one lock row; the primary key makes a second insert fail.
type Cron struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey"`
	CreatedAt time.Time
}

type CronRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCronRepo(db *gorm.DB, log *logger.Logger) (*CronRepo, error) {
	if err := db.AutoMigrate(&Cron{}); err != nil {
		return nil, fmt.Errorf("migrate cron: %w", err)
	}
	return &CronRepo{db: db, log: log}, nil
}

// SaveCron needs a gorm.DB opened with TranslateError so that a held lock
// surfaces as gorm.ErrDuplicatedKey.
func (r *CronRepo) SaveCron(ctx context.Context, c *domain.Cron) (*domain.Cron, error) {
	model := Cron{ID: c.ID}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLocked, c.ID)
		}
		return nil, err
	}
	return toDomainCron(&model), nil
}

func (r *CronRepo) GetCronByID(ctx context.Context, id uuid.UUID) (*domain.Cron, error) {
	var c Cron
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainCron(&c), nil
}

func (r *CronRepo) DeleteCron(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Cron{}, "id = ?", id).Error
}

func toDomainCron(c *Cron) *domain.Cron {
	return &domain.Cron{ID: c.ID, CreatedAt: c.CreatedAt}
}
