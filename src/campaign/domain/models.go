package domain

import (
	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Liquidity tokens minted by the factory.
const (
	LiquidityTokenDecimals = 18
	LiquidityTokenSymbol   = "DXS"
	LiquidityTokenName     = "DXswap"
)

// Addresses are only required here; checksum validation happens when a
// campaign is materialized so that one bad record fails alone.

type RawToken struct {
	Address  string       `json:"address" validate:"required"`
	Name     string       `json:"name"`
	Symbol   string       `json:"symbol"`
	Decimals subgraph.Int `json:"decimals" validate:"gte=0,lte=255"`
}

type RawRewardToken struct {
	RawToken
	DerivedNativeCurrency string `json:"derivedNativeCurrency" validate:"required,decimal"`
}

type RawReward struct {
	Amount string         `json:"amount" validate:"required,decimal"`
	Token  RawRewardToken `json:"token"`
}

type RawPair struct {
	Address               string   `json:"address" validate:"required"`
	Token0                RawToken `json:"token0"`
	Token1                RawToken `json:"token1"`
	Reserve0              string   `json:"reserve0" validate:"required,decimal"`
	Reserve1              string   `json:"reserve1" validate:"required,decimal"`
	ReserveNativeCurrency string   `json:"reserveNativeCurrency" validate:"required,decimal"`
	TotalSupply           string   `json:"totalSupply" validate:"required,decimal"`
}

type RawCampaign struct {
	Address      string       `json:"address" validate:"required"`
	Duration     subgraph.Int `json:"duration" validate:"gte=0"`
	StartsAt     subgraph.Int `json:"startsAt"`
	EndsAt       subgraph.Int `json:"endsAt" validate:"gtefield=StartsAt"`
	Locked       bool         `json:"locked"`
	StakingCap   string       `json:"stakingCap" validate:"required,decimal"`
	StakedAmount string       `json:"stakedAmount" validate:"required,decimal"`
	Rewards      []RawReward  `json:"rewards" validate:"required,dive"`
	StakablePair RawPair      `json:"stakablePair"`
}

// Campaign is a liquidity-mining program with every amount priced in the
// chain's native currency.
type Campaign struct {
	ChainID    config.ChainID
	Address    common.Address
	StartsAt   int64
	EndsAt     int64
	Duration   int64
	Locked     bool
	Pair       pricing.Pair
	Staked     pricing.PricedAmount
	StakingCap pricing.Amount
	Rewards    []pricing.PricedAmount
}

// ChainCampaigns is everything read from one chain for the pools report.
type ChainCampaigns struct {
	Chain     config.ChainConfig
	Campaigns []Campaign
	// Pools[i] is Campaigns[i] projected for the report, without its ordinal.
	Pools     []Pool
	NativeUSD pricing.Price
	TVL       pricing.Amount
	Skipped   int
}

// Pool is the report-facing projection of one campaign.
type Pool struct {
	Identifier      string
	LiquidityLocked decimal.Decimal
	Pair            string
	PairLink        string
	PoolRewards     []string
	TotalStakedUSD  decimal.Decimal
	APR             decimal.Decimal
}

type Report struct {
	Pools  []Pool
	TVLUSD pricing.Amount
}
