package domain

import (
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/pricing"
)

// PageSize is the subgraph page size; a shorter page is the last one.
const PageSize = 1000

// LiquidityTokenDecimals is fixed for every pair minted by the factory.
const LiquidityTokenDecimals = 18

// RawPair is one record of the `pairs` subgraph query.
type RawPair struct {
	ID          string `json:"id" validate:"required,eth_addr"`
	TotalSupply string `json:"totalSupply" validate:"required,decimal"`
	ReserveUSD  string `json:"reserveUSD" validate:"required,decimal"`
}

type ChainFees struct {
	ChainID config.ChainID
	Key     string
	Pairs   int
	USD     pricing.Amount
}

type Report struct {
	Chains []ChainFees
	Total  pricing.Amount
}
