package usecase

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/ethereum"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/fees/domain"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

var _ domain.FeesUseCase = (*FeesService)(nil)

type FeesService struct {
	sources map[config.ChainID]domain.ChainSource
	logger  *logger.Logger
}

func NewService(sources map[config.ChainID]domain.ChainSource, logg *logger.Logger) *FeesService {
	return &FeesService{sources: sources, logger: logg}
}

// UncollectedFees values the fee receiver's LP balances on every chain in USD.
func (s *FeesService) UncollectedFees(ctx context.Context) (*domain.Report, error) {
	ids := make([]config.ChainID, 0, len(s.sources))
	for id := range s.sources {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	results := make([]domain.ChainFees, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			fees, err := s.chainFees(gctx, id, s.sources[id])
			if err != nil {
				return fmt.Errorf("%s fees: %w", s.sources[id].Key, err)
			}
			results[i] = fees
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Errorf("uncollected fees: %v", err)
		return nil, err
	}

	total := pricing.ZeroAmount(pricing.USD)
	for _, r := range results {
		var err error
		if total, err = total.Add(r.USD); err != nil {
			return nil, err
		}
	}
	return &domain.Report{Chains: results, Total: total}, nil
}

func (s *FeesService) chainFees(ctx context.Context, id config.ChainID, src domain.ChainSource) (domain.ChainFees, error) {
	pairs, err := AllPairs(ctx, src.Pairs)
	if err != nil {
		return domain.ChainFees{}, err
	}

	queries := make([]ethereum.BalanceQuery, len(pairs))
	for i, p := range pairs {
		queries[i] = ethereum.BalanceQuery{Token: common.HexToAddress(p.ID), Holder: src.FeeReceiver}
	}
	balances, err := src.Balances.BalanceOf(ctx, queries)
	if err != nil {
		return domain.ChainFees{}, err
	}

	usd := pricing.ZeroAmount(pricing.USD)
	for i, p := range pairs {
		value, err := pairFeesUSD(uint64(id), p, balances[i])
		if err != nil {
			return domain.ChainFees{}, fmt.Errorf("pair %s: %w", p.ID, err)
		}
		if usd, err = usd.Add(value); err != nil {
			return domain.ChainFees{}, err
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"chain": src.Key,
		"pairs": len(pairs),
		"usd":   usd.Fixed(3),
	}).Debugf("uncollected fees computed")
	return domain.ChainFees{ChainID: id, Key: src.Key, Pairs: len(pairs), USD: usd}, nil
}

// AllPairs follows the id cursor until a page comes back short.
func AllPairs(ctx context.Context, source domain.PairSource) ([]domain.RawPair, error) {
	var (
		all    []domain.RawPair
		lastID string
	)
	for {
		page, err := source.PairsPage(ctx, lastID, domain.PageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < domain.PageSize {
			return all, nil
		}
		lastID = page[len(page)-1].ID
	}
}

// pairFeesUSD is reserveUSD / totalSupply * balance, without intermediate rounding.
func pairFeesUSD(chainID uint64, p domain.RawPair, balance *big.Int) (pricing.Amount, error) {
	if balance == nil || balance.Sign() == 0 {
		return pricing.ZeroAmount(pricing.USD), nil
	}

	supply, err := pricing.ParseDecimal(p.TotalSupply)
	if err != nil {
		return pricing.Amount{}, err
	}
	if supply.IsZero() {
		return pricing.Amount{}, fmt.Errorf("%w: balance held in a pair with zero total supply", pricing.ErrDivisionByZero)
	}

	lp := pricing.Token{
		ChainID:  chainID,
		Address:  common.HexToAddress(p.ID),
		Decimals: domain.LiquidityTokenDecimals,
	}
	price, err := pricing.LPTokenPrice(pricing.Pair{LiquidityToken: lp}, pricing.USD, p.TotalSupply, p.ReserveUSD)
	if err != nil {
		return pricing.Amount{}, err
	}
	held, err := pricing.NewAmountFromRaw(lp, balance)
	if err != nil {
		return pricing.Amount{}, err
	}
	return price.Convert(held)
}
