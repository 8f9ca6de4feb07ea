package http

import (
	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
	"github.com/MMN3003/swapr-metrics/src/config"
)

// PoolDto is one liquidity-mining pool
type PoolDto struct {
	Identifier      string   `json:"identifier" example:"Swapr DXD-WETH on mainnet"`
	LiquidityLocked float64  `json:"liquidity_locked" example:"125000.5"`
	Pair            string   `json:"pair" example:"DXD-WETH"`
	PairLink        string   `json:"pairLink"`
	PoolRewards     []string `json:"poolRewards"`
	TotalStakedUSD  float64  `json:"totalStakedUSD" example:"98000.12"`
	APR             float64  `json:"apr" example:"42.5"`
}

type LinkDto struct {
	Title string `json:"title" example:"Twitter"`
	Link  string `json:"link"`
}

// PoolsResponse is the pools listing with provider metadata
type PoolsResponse struct {
	Provider     string    `json:"provider" example:"Swapr"`
	ProviderLogo string    `json:"provider_logo"`
	ProviderURL  string    `json:"provider_URL"`
	Links        []LinkDto `json:"links"`
	TVLUSD       string    `json:"tvlUSD" example:"1500000.00"`
	Pools        []PoolDto `json:"pools"`
}

func PoolDtoFromDomain(p domain.Pool) PoolDto {
	return PoolDto{
		Identifier:      p.Identifier,
		LiquidityLocked: p.LiquidityLocked.InexactFloat64(),
		Pair:            p.Pair,
		PairLink:        p.PairLink,
		PoolRewards:     p.PoolRewards,
		TotalStakedUSD:  p.TotalStakedUSD.InexactFloat64(),
		APR:             p.APR.InexactFloat64(),
	}
}

func PoolsResponseFromDomain(r *domain.Report, provider config.ProviderConfig) PoolsResponse {
	links := make([]LinkDto, len(provider.Links))
	for i, l := range provider.Links {
		links[i] = LinkDto{Title: l.Title, Link: l.Link}
	}
	pools := make([]PoolDto, len(r.Pools))
	for i, p := range r.Pools {
		pools[i] = PoolDtoFromDomain(p)
	}
	return PoolsResponse{
		Provider:     provider.Name,
		ProviderLogo: provider.Logo,
		ProviderURL:  provider.URL,
		Links:        links,
		TVLUSD:       r.TVLUSD.Fixed(2),
		Pools:        pools,
	}
}
