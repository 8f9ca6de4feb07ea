package domain

import (
	"context"
	"time"

	"github.com/MMN3003/swapr-metrics/src/config"
)

// CampaignSource reads one chain's exchange subgraph.
type CampaignSource interface {
	NativeCurrencyPrice(ctx context.Context) (string, error)
	TotalLiquidityUSD(ctx context.Context) (string, error)
	ActiveCampaigns(ctx context.Context, at time.Time) ([]RawCampaign, error)
}

type ChainSource struct {
	Chain  config.ChainConfig
	Source CampaignSource
}

type PoolsUseCase interface {
	Pools(ctx context.Context) (*Report, error)
}
