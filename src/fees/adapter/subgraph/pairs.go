package subgraph

import (
	"context"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	"github.com/MMN3003/swapr-metrics/src/fees/domain"
)

const pairsQuery = `query pairs($first: Int!, $lastId: ID!) {
  pairs(first: $first, where: { id_gt: $lastId }, orderBy: id, orderDirection: asc) {
    id
    totalSupply
    reserveUSD
  }
}`

type pairsResponse struct {
	Pairs []domain.RawPair `json:"pairs" validate:"required,dive"`
}

var _ domain.PairSource = (*PairPort)(nil)

// PairPort reads liquidity pairs from a chain's exchange subgraph.
type PairPort struct {
	client *subgraph.Client
}

func NewPairPort(c *subgraph.Client) *PairPort {
	return &PairPort{client: c}
}

func (p *PairPort) PairsPage(ctx context.Context, afterID string, first int) ([]domain.RawPair, error) {
	res, err := subgraph.Query[pairsResponse](ctx, p.client, pairsQuery, map[string]any{
		"first":  first,
		"lastId": afterID,
	})
	if err != nil {
		return nil, err
	}
	return res.Pairs, nil
}
