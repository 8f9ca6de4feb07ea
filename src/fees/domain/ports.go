package domain

import (
	"context"
	"math/big"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// PairSource pages through all liquidity pairs by increasing id.
type PairSource interface {
	PairsPage(ctx context.Context, afterID string, first int) ([]RawPair, error)
}

type BalanceReader interface {
	BalanceOf(ctx context.Context, queries []ethereum.BalanceQuery) ([]*big.Int, error)
}

// ChainSource is everything the fee computation reads on one chain.
type ChainSource struct {
	Key         string
	FeeReceiver common.Address
	Pairs       PairSource
	Balances    BalanceReader
}

type FeesUseCase interface {
	UncollectedFees(ctx context.Context) (*Report, error)
}
