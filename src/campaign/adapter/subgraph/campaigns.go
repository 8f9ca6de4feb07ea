package subgraph

import (
	"context"
	"strconv"
	"time"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
)

const bundleQuery = `query {
  bundle(id: "1") {
    nativeCurrencyPrice
  }
}`

const factoriesQuery = `query {
  swaprFactories(first: 1) {
    totalLiquidityUSD
  }
}`

const campaignsQuery = `query activeCampaigns($timestamp: BigInt!, $first: Int!) {
  liquidityMiningCampaigns(first: $first, where: { startsAt_lte: $timestamp, endsAt_gt: $timestamp }) {
    address: id
    duration
    startsAt
    endsAt
    locked
    stakingCap
    rewards {
      amount
      token {
        derivedNativeCurrency
        address: id
        name
        symbol
        decimals
      }
    }
    stakedAmount
    stakablePair {
      address: id
      token0 {
        address: id
        name
        symbol
        decimals
      }
      token1 {
        address: id
        name
        symbol
        decimals
      }
      reserve0
      reserve1
      reserveNativeCurrency
      totalSupply
    }
  }
}`

// campaignsPageSize is the largest `first` subgraphs accept.
const campaignsPageSize = 1000

type bundleResponse struct {
	Bundle *struct {
		NativeCurrencyPrice string `json:"nativeCurrencyPrice" validate:"required,decimal"`
	} `json:"bundle" validate:"required"`
}

type factoriesResponse struct {
	Factories []struct {
		TotalLiquidityUSD string `json:"totalLiquidityUSD" validate:"required,decimal"`
	} `json:"swaprFactories" validate:"required,min=1,dive"`
}

type campaignsResponse struct {
	Campaigns []domain.RawCampaign `json:"liquidityMiningCampaigns" validate:"required,dive"`
}

var _ domain.CampaignSource = (*CampaignPort)(nil)

// CampaignPort reads prices, liquidity and campaigns from a chain's exchange subgraph.
type CampaignPort struct {
	client *subgraph.Client
}

func NewCampaignPort(c *subgraph.Client) *CampaignPort {
	return &CampaignPort{client: c}
}

func (p *CampaignPort) NativeCurrencyPrice(ctx context.Context) (string, error) {
	res, err := subgraph.Query[bundleResponse](ctx, p.client, bundleQuery, nil)
	if err != nil {
		return "", err
	}
	return res.Bundle.NativeCurrencyPrice, nil
}

func (p *CampaignPort) TotalLiquidityUSD(ctx context.Context) (string, error) {
	res, err := subgraph.Query[factoriesResponse](ctx, p.client, factoriesQuery, nil)
	if err != nil {
		return "", err
	}
	return res.Factories[0].TotalLiquidityUSD, nil
}

// ActiveCampaigns returns campaigns with startsAt <= at < endsAt.
func (p *CampaignPort) ActiveCampaigns(ctx context.Context, at time.Time) ([]domain.RawCampaign, error) {
	res, err := subgraph.Query[campaignsResponse](ctx, p.client, campaignsQuery, map[string]any{
		"timestamp": strconv.FormatInt(at.Unix(), 10),
		"first":     campaignsPageSize,
	})
	if err != nil {
		return nil, err
	}
	return res.Campaigns, nil
}
