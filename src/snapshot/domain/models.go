package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("snapshot not found")
	ErrUnknownKind = errors.New("unknown report kind")
)

type Kind string

const (
	KindCirculatingSupply Kind = "circulating-supply"
	KindProtocolFees      Kind = "uncollected-protocol-fees"
	KindPools             Kind = "pools"
)

// Snapshot is one stored report payload, exactly as the live endpoint renders it.
type Snapshot struct {
	ID      uuid.UUID
	Kind    Kind
	Body    json.RawMessage
	TakenAt time.Time
}
