package cron

import (
	"context"

	"github.com/MMN3003/swapr-metrics/src/cron/domain"
	"github.com/google/uuid"
)

type CronAdapter interface {
	RunLocked(ctx context.Context, id uuid.UUID, job func(context.Context) error) error
}

var _ CronAdapter = (*CronPort)(nil)

func NewCronPort(cronService domain.CronUseCase) CronAdapter {
	return &CronPort{cronService: cronService}
}

type CronPort struct {
	cronService domain.CronUseCase
}

func (m *CronPort) RunLocked(ctx context.Context, id uuid.UUID, job func(context.Context) error) error {
	return m.cronService.RunLocked(ctx, id, job)
}
