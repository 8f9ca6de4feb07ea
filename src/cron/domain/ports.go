package domain

import (
	"context"

	"github.com/google/uuid"
)

type CronRepository interface {
	SaveCron(ctx context.Context, c *Cron) (*Cron, error)
	GetCronByID(ctx context.Context, id uuid.UUID) (*Cron, error)
	DeleteCron(ctx context.Context, id uuid.UUID) error
}

type CronUseCase interface {
	CreateCron(ctx context.Context, id uuid.UUID) error
	DeleteCron(ctx context.Context, id uuid.UUID) error
	RunLocked(ctx context.Context, id uuid.UUID, job func(context.Context) error) error
}
