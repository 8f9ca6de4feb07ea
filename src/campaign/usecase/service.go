package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

const usdPlaces = 2

var _ domain.PoolsUseCase = (*PoolsService)(nil)

type PoolsService struct {
	sources      []domain.ChainSource
	pairLinkBase string
	strict       bool
	now          func() time.Time
	logger       *logger.Logger
}

type Option func(*PoolsService)

// WithStrict makes one bad campaign fail its whole chain instead of being skipped.
func WithStrict(strict bool) Option { return func(s *PoolsService) { s.strict = strict } }

func WithClock(now func() time.Time) Option { return func(s *PoolsService) { s.now = now } }

func NewService(sources map[config.ChainID]domain.ChainSource, pairLinkBase string, logg *logger.Logger, opts ...Option) *PoolsService {
	ordered := make([]domain.ChainSource, 0, len(sources))
	for _, src := range sources {
		ordered = append(ordered, src)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Chain.ID < ordered[j].Chain.ID })

	s := &PoolsService{
		sources:      ordered,
		pairLinkBase: pairLinkBase,
		now:          time.Now,
		logger:       logg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pools lists every active campaign as a pool, chains in ascending id order and
// campaigns in the order the subgraph returned them.
func (s *PoolsService) Pools(ctx context.Context) (*domain.Report, error) {
	now := s.now().UTC()

	chains := make([]domain.ChainCampaigns, len(s.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			cc, err := s.chainCampaigns(gctx, src, now)
			if err != nil {
				return fmt.Errorf("%s campaigns: %w", src.Chain.Key, err)
			}
			chains[i] = cc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Errorf("pools: %v", err)
		return nil, err
	}

	tvl := pricing.ZeroAmount(pricing.USD)
	for _, cc := range chains {
		var err error
		if tvl, err = tvl.Add(cc.TVL); err != nil {
			return nil, err
		}
	}

	return &domain.Report{Pools: toPools(chains), TVLUSD: tvl}, nil
}

func (s *PoolsService) chainCampaigns(ctx context.Context, src domain.ChainSource, now time.Time) (domain.ChainCampaigns, error) {
	chain := src.Chain
	native := pricing.NativeCurrency(uint64(chain.ID), chain.NativeSymbol, chain.NativeDecimals)

	price, err := src.Source.NativeCurrencyPrice(ctx)
	if err != nil {
		return domain.ChainCampaigns{}, err
	}
	nativeUSD, err := pricing.NewPriceFromDecimal(native, pricing.USD, price)
	if err != nil {
		return domain.ChainCampaigns{}, fmt.Errorf("native currency price: %w", err)
	}

	liquidity, err := src.Source.TotalLiquidityUSD(ctx)
	if err != nil {
		return domain.ChainCampaigns{}, err
	}
	tvl, err := pricing.NewAmount(pricing.USD, liquidity)
	if err != nil {
		return domain.ChainCampaigns{}, fmt.Errorf("total liquidity: %w", err)
	}

	raws, err := src.Source.ActiveCampaigns(ctx, now)
	if err != nil {
		return domain.ChainCampaigns{}, err
	}

	out := domain.ChainCampaigns{Chain: chain, NativeUSD: nativeUSD, TVL: tvl}
	for _, raw := range raws {
		c, pool, err := s.load(chain, native, nativeUSD, raw, now.Unix())
		if err != nil {
			if s.strict {
				return domain.ChainCampaigns{}, fmt.Errorf("campaign %s: %w", raw.Address, err)
			}
			s.logger.WithFields(map[string]interface{}{
				"chain":    chain.Key,
				"campaign": raw.Address,
			}).Warnf("skipping campaign: %v", err)
			out.Skipped++
			continue
		}
		out.Campaigns = append(out.Campaigns, c)
		out.Pools = append(out.Pools, pool)
	}

	s.logger.WithFields(map[string]interface{}{
		"chain":     chain.Key,
		"campaigns": len(out.Campaigns),
		"skipped":   out.Skipped,
	}).Debugf("campaigns loaded")
	return out, nil
}

func (s *PoolsService) load(chain config.ChainConfig, native pricing.Token, nativeUSD pricing.Price, raw domain.RawCampaign, now int64) (domain.Campaign, domain.Pool, error) {
	pair, err := PairFromRaw(chain.ID, raw.StakablePair)
	if err != nil {
		return domain.Campaign{}, domain.Pool{}, err
	}
	c, err := MaterializeCampaign(raw, pair, native, raw.StakablePair.TotalSupply, raw.StakablePair.ReserveNativeCurrency)
	if err != nil {
		return domain.Campaign{}, domain.Pool{}, err
	}
	pool, err := s.toPool(c, chain, nativeUSD, now)
	if err != nil {
		return domain.Campaign{}, domain.Pool{}, err
	}
	return c, pool, nil
}

type poolKey struct {
	lp    common.Address
	chain config.ChainID
}

type member struct {
	chain    int
	campaign int
}

// toPools groups campaigns by (liquidity token, chain), keeping discovery order.
// Members of a group with more than one campaign get an ordinal suffix.
func toPools(chains []domain.ChainCampaigns) []domain.Pool {
	var order []poolKey
	groups := make(map[poolKey][]member)
	for ci, cc := range chains {
		for i, c := range cc.Campaigns {
			key := poolKey{lp: c.Pair.LiquidityToken.Address, chain: c.ChainID}
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], member{chain: ci, campaign: i})
		}
	}

	pools := make([]domain.Pool, 0)
	for _, key := range order {
		members := groups[key]
		for n, m := range members {
			pool := chains[m.chain].Pools[m.campaign]
			if len(members) > 1 {
				pool.Identifier = fmt.Sprintf("%s %d", pool.Identifier, n+1)
			}
			pools = append(pools, pool)
		}
	}
	return pools
}

// toPool projects a campaign without its group ordinal.
func (s *PoolsService) toPool(c domain.Campaign, chain config.ChainConfig, nativeUSD pricing.Price, now int64) (domain.Pool, error) {
	token0, token1 := c.Pair.Token0(), c.Pair.Token1()
	pair := token0.Symbol + "-" + token1.Symbol

	stakedNative, err := c.Staked.Value()
	if err != nil {
		return domain.Pool{}, err
	}
	stakedUSD, err := nativeUSD.Convert(stakedNative)
	if err != nil {
		return domain.Pool{}, err
	}
	apr, err := APR(c, now)
	if err != nil {
		return domain.Pool{}, fmt.Errorf("apr: %w", err)
	}

	rewards := make([]string, len(c.Rewards))
	for i, r := range c.Rewards {
		rewards[i] = r.Token.Symbol
	}

	// Liquidity locked in a campaign is what is staked in it, not the whole pair.
	stakedUSDRounded := stakedUSD.Decimal().Round(usdPlaces)
	return domain.Pool{
		Identifier:      fmt.Sprintf("Swapr %s on %s", pair, chain.Name),
		LiquidityLocked: stakedUSDRounded,
		Pair:            pair,
		PairLink:        fmt.Sprintf("%s/%s/%s?chainId=%d", s.pairLinkBase, token0.Address.Hex(), token1.Address.Hex(), chain.ID),
		PoolRewards:     rewards,
		TotalStakedUSD:  stakedUSDRounded,
		APR:             apr.Round(usdPlaces),
	}, nil
}

