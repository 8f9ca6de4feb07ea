package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrLocked means another run of the same job holds the lock.
var ErrLocked = errors.New("cron job already running")

// Cron is the lock row of a running job.
type Cron struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
