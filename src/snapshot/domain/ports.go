package domain

import (
	"context"
)

type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, s *Snapshot) error
	LatestSnapshot(ctx context.Context, kind Kind) (*Snapshot, error)
}

// Reporter computes the payload of one report.
type Reporter func(ctx context.Context) (any, error)

type SnapshotUseCase interface {
	Record(ctx context.Context) error
	Latest(ctx context.Context, kind Kind) (*Snapshot, error)
}
