package usecase

import (
	"fmt"

	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/pricing"
)

func tokenFromRaw(chainID config.ChainID, raw domain.RawToken) (pricing.Token, error) {
	return pricing.NewToken(uint64(chainID), raw.Address, int32(raw.Decimals), raw.Symbol, raw.Name)
}

// PairFromRaw builds a campaign's stakable pair. The pair contract is also its
// liquidity token.
func PairFromRaw(chainID config.ChainID, raw domain.RawPair) (pricing.Pair, error) {
	lp, err := pricing.NewToken(uint64(chainID), raw.Address, domain.LiquidityTokenDecimals,
		domain.LiquidityTokenSymbol, domain.LiquidityTokenName)
	if err != nil {
		return pricing.Pair{}, fmt.Errorf("pair: %w", err)
	}
	token0, err := tokenFromRaw(chainID, raw.Token0)
	if err != nil {
		return pricing.Pair{}, fmt.Errorf("token0: %w", err)
	}
	token1, err := tokenFromRaw(chainID, raw.Token1)
	if err != nil {
		return pricing.Pair{}, fmt.Errorf("token1: %w", err)
	}
	reserve0, err := pricing.NewAmount(token0, raw.Reserve0)
	if err != nil {
		return pricing.Pair{}, fmt.Errorf("reserve0: %w", err)
	}
	reserve1, err := pricing.NewAmount(token1, raw.Reserve1)
	if err != nil {
		return pricing.Pair{}, fmt.Errorf("reserve1: %w", err)
	}
	return pricing.Pair{LiquidityToken: lp, Reserve0: reserve0, Reserve1: reserve1}, nil
}

// MaterializeCampaign prices a raw campaign's rewards and stake in reference
// units. Timestamps are copied as they come.
func MaterializeCampaign(raw domain.RawCampaign, pair pricing.Pair, reference pricing.Token, totalSupply, reserveInReference string) (domain.Campaign, error) {
	chainID := config.ChainID(pair.LiquidityToken.ChainID)

	address, err := pricing.ParseChecksumAddress(raw.Address)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign: %w", err)
	}

	rewards := make([]pricing.PricedAmount, len(raw.Rewards))
	for i, r := range raw.Rewards {
		token, err := tokenFromRaw(chainID, r.Token.RawToken)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("reward %d: %w", i, err)
		}
		price, err := pricing.NewPriceFromDecimal(token, reference, r.Token.DerivedNativeCurrency)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("reward %s price: %w", token, err)
		}
		amount, err := pricing.NewAmount(token, r.Amount)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("reward %s amount: %w", token, err)
		}
		if rewards[i], err = pricing.NewPricedAmount(amount, price); err != nil {
			return domain.Campaign{}, err
		}
	}

	lpPrice, err := pricing.LPTokenPrice(pair, reference, totalSupply, reserveInReference)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("liquidity token price: %w", err)
	}
	stakedAmount, err := pricing.NewAmount(pair.LiquidityToken, raw.StakedAmount)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("staked amount: %w", err)
	}
	staked, err := pricing.NewPricedAmount(stakedAmount, lpPrice)
	if err != nil {
		return domain.Campaign{}, err
	}
	stakingCap, err := pricing.NewAmount(pair.LiquidityToken, raw.StakingCap)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("staking cap: %w", err)
	}
	return domain.Campaign{
		ChainID:    chainID,
		Address:    address,
		StartsAt:   int64(raw.StartsAt),
		EndsAt:     int64(raw.EndsAt),
		Duration:   int64(raw.Duration),
		Locked:     raw.Locked,
		Pair:       pair,
		Staked:     staked,
		StakingCap: stakingCap,
		Rewards:    rewards,
	}, nil
}
