package usecase

import (
	"fmt"
	"math/big"

	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/shopspring/decimal"
)

const secondsPerYear = 31_536_000

// APR annualises the rewards still to be paid against the value currently
// staked, in percent. An ended campaign yields 0. With nothing staked the value
// of one liquidity token is used.
func APR(c domain.Campaign, now int64) (decimal.Decimal, error) {
	if now >= c.EndsAt {
		return decimal.Zero, nil
	}
	duration := c.Duration
	if duration <= 0 {
		duration = c.EndsAt - c.StartsAt
	}
	if duration <= 0 {
		return decimal.Zero, nil
	}
	remaining := c.EndsAt - max(now, c.StartsAt)

	rewards := new(big.Int)
	for _, r := range c.Rewards {
		value, err := r.Value()
		if err != nil {
			return decimal.Zero, err
		}
		rewards.Add(rewards, value.Raw)
	}
	rewards.Mul(rewards, big.NewInt(remaining))
	rewards.Quo(rewards, big.NewInt(duration))

	staked, err := stakedValue(c)
	if err != nil {
		return decimal.Zero, err
	}
	if staked.Sign() == 0 {
		return decimal.Zero, fmt.Errorf("%w: liquidity token has no value", pricing.ErrDivisionByZero)
	}

	num := decimal.NewFromBigInt(rewards, 0).Mul(decimal.NewFromInt(secondsPerYear * 100))
	den := decimal.NewFromBigInt(staked, 0).Mul(decimal.NewFromInt(remaining))
	return num.DivRound(den, 18), nil
}

func stakedValue(c domain.Campaign) (*big.Int, error) {
	stake := c.Staked.Amount
	if stake.IsZero() {
		unit, err := pricing.NewAmount(stake.Token, "1")
		if err != nil {
			return nil, err
		}
		stake = unit
	}
	value, err := c.Staked.Price.Convert(stake)
	if err != nil {
		return nil, err
	}
	return value.Raw, nil
}
