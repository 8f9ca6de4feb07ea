package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/ethereum"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/MMN3003/swapr-metrics/src/supply/domain"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

var _ domain.SupplyUseCase = (*SupplyService)(nil)

type SupplyService struct {
	initial    *big.Int
	decimals   int32
	exclusions []config.SupplyExclusion
	holders    []common.Address
	sources    map[config.ChainID]domain.ChainSource
	logger     *logger.Logger
}

func NewService(cfg config.SupplyConfig, sources map[config.ChainID]domain.ChainSource, logg *logger.Logger) (*SupplyService, error) {
	initial, err := pricing.ParseFixed(cfg.InitialSupply, cfg.Decimals)
	if err != nil {
		return nil, fmt.Errorf("initial supply: %w", err)
	}

	holders := make([]common.Address, len(cfg.Exclusions))
	for i, ex := range cfg.Exclusions {
		if _, ok := sources[ex.ChainID]; !ok {
			return nil, fmt.Errorf("exclusion %q: chain %d is not tracked", ex.Label, ex.ChainID)
		}
		if !common.IsHexAddress(ex.Holder) {
			return nil, fmt.Errorf("exclusion %q: %w: %q", ex.Label, pricing.ErrInvalidAddress, ex.Holder)
		}
		holders[i] = common.HexToAddress(ex.Holder)
	}

	return &SupplyService{
		initial:    initial,
		decimals:   cfg.Decimals,
		exclusions: cfg.Exclusions,
		holders:    holders,
		sources:    sources,
		logger:     logg,
	}, nil
}

// CirculatingSupply subtracts every excluded balance from the initial supply.
// Each chain is read with one multicall; chains are read concurrently.
func (s *SupplyService) CirculatingSupply(ctx context.Context) (*domain.Report, error) {
	byChain := make(map[config.ChainID][]int)
	for i, ex := range s.exclusions {
		byChain[ex.ChainID] = append(byChain[ex.ChainID], i)
	}

	// every goroutine writes a disjoint set of indexes
	balances := make([]*big.Int, len(s.exclusions))

	g, gctx := errgroup.WithContext(ctx)
	for chainID, idx := range byChain {
		src := s.sources[chainID]
		g.Go(func() error {
			queries := make([]ethereum.BalanceQuery, len(idx))
			for j, i := range idx {
				queries[j] = ethereum.BalanceQuery{Token: src.Token, Holder: s.holders[i]}
			}
			out, err := src.Reader.BalanceOf(gctx, queries)
			if err != nil {
				return fmt.Errorf("chain %d balances: %w", chainID, err)
			}
			for j, i := range idx {
				balances[i] = out[j]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Errorf("circulating supply: %v", err)
		return nil, err
	}

	report := &domain.Report{
		Decimals:      s.decimals,
		InitialSupply: new(big.Int).Set(s.initial),
		Excluded:      make([]domain.Balance, len(s.exclusions)),
	}
	circulating := new(big.Int).Set(s.initial)
	for i, ex := range s.exclusions {
		report.Excluded[i] = domain.Balance{Label: ex.Label, Amount: balances[i]}
		circulating.Sub(circulating, balances[i])
	}
	if circulating.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNegativeSupply, pricing.FormatUnits(circulating, s.decimals))
	}
	report.CirculatingSupply = circulating

	s.logger.WithField("circulating", pricing.FormatUnits(circulating, s.decimals)).Debugf("circulating supply computed")
	return report, nil
}
