package pricing

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Price converts raw units of Base into raw units of Quote:
// quote = base * Numerator / Denominator.
type Price struct {
	Base        Token
	Quote       Token
	Numerator   *big.Int
	Denominator *big.Int
}

func NewPrice(base, quote Token, numerator, denominator *big.Int) (Price, error) {
	if denominator == nil || denominator.Sign() == 0 {
		return Price{}, fmt.Errorf("%w: price %s/%s", ErrDivisionByZero, base, quote)
	}
	if numerator == nil || numerator.Sign() < 0 || denominator.Sign() < 0 {
		return Price{}, fmt.Errorf("%w: negative price %s/%s", ErrInvalidAmount, base, quote)
	}
	return Price{
		Base:        base,
		Quote:       quote,
		Numerator:   new(big.Int).Set(numerator),
		Denominator: new(big.Int).Set(denominator),
	}, nil
}

// NewPriceFromDecimal builds the price of one whole Base in whole Quote units from a
// decimal string such as a subgraph `derivedNativeCurrency`.
// The denominator is one whole Base, 10^base.Decimals, whatever Quote.Decimals is.
func NewPriceFromDecimal(base, quote Token, perUnit string) (Price, error) {
	num, err := ParseFixed(perUnit, quote.Decimals)
	if err != nil {
		return Price{}, err
	}
	den, err := ParseFixed("1", base.Decimals)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(base, quote, num, den)
}

// Multiply chains p (A->B) with next (B->C) into A->C.
func (p Price) Multiply(next Price) (Price, error) {
	if !p.Quote.Equal(next.Base) {
		return Price{}, fmt.Errorf("%w: cannot chain %s/%s with %s/%s", ErrCurrencyMismatch, p.Base, p.Quote, next.Base, next.Quote)
	}
	num := new(big.Int).Mul(p.Numerator, next.Numerator)
	den := new(big.Int).Mul(p.Denominator, next.Denominator)
	if gcd := new(big.Int).GCD(nil, nil, num, den); gcd.Sign() > 0 && gcd.Cmp(big.NewInt(1)) != 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	return NewPrice(p.Base, next.Quote, num, den)
}

// Convert converts an amount of Base into Quote, rounding down to the smallest Quote unit.
func (p Price) Convert(a Amount) (Amount, error) {
	if !a.Token.Equal(p.Base) {
		return Amount{}, fmt.Errorf("%w: %s is not %s", ErrCurrencyMismatch, a.Token, p.Base)
	}
	if p.Denominator == nil || p.Denominator.Sign() == 0 {
		return Amount{}, fmt.Errorf("%w: price %s/%s", ErrDivisionByZero, p.Base, p.Quote)
	}
	raw := new(big.Int).Mul(a.Raw, p.Numerator)
	raw.Quo(raw, p.Denominator)
	return Amount{Token: p.Quote, Raw: raw}, nil
}

// Decimal is the human-scale price of one whole Base unit, for display only.
func (p Price) Decimal() decimal.Decimal {
	num := decimal.NewFromBigInt(p.Numerator, p.Base.Decimals-p.Quote.Decimals)
	return num.DivRound(decimal.NewFromBigInt(p.Denominator, 0), 36)
}

// Pair is a liquidity pool and the token minted to its liquidity providers.
type Pair struct {
	LiquidityToken Token
	Reserve0       Amount
	Reserve1       Amount
}

func (p Pair) Token0() Token { return p.Reserve0.Token }
func (p Pair) Token1() Token { return p.Reserve1.Token }

// LPTokenPrice prices one liquidity token in reference units from the pool's total
// supply and its reserve valued in the reference currency.
//
// A pair that was created but never funded has a zero total supply. Its price is
// given a denominator of one whole liquidity token instead of failing, so the
// result is a placeholder and carries no market meaning.
func LPTokenPrice(pair Pair, reference Token, totalSupply, reserveInReference string) (Price, error) {
	lp := pair.LiquidityToken

	supply, err := ParseDecimal(totalSupply)
	if err != nil {
		return Price{}, fmt.Errorf("total supply: %w", err)
	}
	supplyText := totalSupply
	if supply.IsZero() {
		supplyText = "1"
	}
	den, err := ParseFixed(supplyText, lp.Decimals)
	if err != nil {
		return Price{}, fmt.Errorf("total supply: %w", err)
	}
	num, err := ParseFixed(reserveInReference, reference.Decimals)
	if err != nil {
		return Price{}, fmt.Errorf("reserve: %w", err)
	}
	return NewPrice(lp, reference, num, den)
}
