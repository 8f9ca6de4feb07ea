package usecase

import (
	"context"
	"errors"
	"time"

	cronDomain "github.com/MMN3003/swapr-metrics/src/cron/domain"
	"github.com/MMN3003/swapr-metrics/src/logger"
	cron_adapter "github.com/MMN3003/swapr-metrics/src/snapshot/adapter/cron"
	"github.com/MMN3003/swapr-metrics/src/snapshot/domain"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var RecordSnapshotsCronID = uuid.MustParse("62444ba0-b2dd-4b8f-afee-c04f7b2ab6f0")

// NewCronService schedules Record on c. The schedule has a seconds field.
func NewCronService(c *cron.Cron, schedule string, timeout time.Duration, s domain.SnapshotUseCase, ca cron_adapter.CronAdapter, logg *logger.Logger) error {
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		handleRecordSnapshots(ctx, s, ca, logg)
	})
	return err
}

func handleRecordSnapshots(ctx context.Context, s domain.SnapshotUseCase, ca cron_adapter.CronAdapter, logg *logger.Logger) {
	err := ca.RunLocked(ctx, RecordSnapshotsCronID, s.Record)
	switch {
	case errors.Is(err, cronDomain.ErrLocked):
		logg.Debugf("snapshot run skipped: previous run still active")
	case err != nil:
		logg.Errorf("snapshot run: %v", err)
	}
}
