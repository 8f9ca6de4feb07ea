package domain

import (
	"context"
	"math/big"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// BalanceReader batches ERC20 balance lookups on a single chain.
type BalanceReader interface {
	BalanceOf(ctx context.Context, queries []ethereum.BalanceQuery) ([]*big.Int, error)
}

// ChainSource is where the governance token lives on one chain.
type ChainSource struct {
	Token  common.Address
	Reader BalanceReader
}

type SupplyUseCase interface {
	CirculatingSupply(ctx context.Context) (*Report, error)
}
