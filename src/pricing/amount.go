package pricing

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative magnitude of Token in its smallest unit.
type Amount struct {
	Token Token
	Raw   *big.Int
}

func NewAmount(token Token, decimalString string) (Amount, error) {
	raw, err := ParseFixed(decimalString, token.Decimals)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Token: token, Raw: raw}, nil
}

func NewAmountFromRaw(token Token, raw *big.Int) (Amount, error) {
	if raw == nil || raw.Sign() < 0 {
		return Amount{}, fmt.Errorf("%w: raw %v", ErrInvalidAmount, raw)
	}
	return Amount{Token: token, Raw: new(big.Int).Set(raw)}, nil
}

func ZeroAmount(token Token) Amount {
	return Amount{Token: token, Raw: new(big.Int)}
}

func (a Amount) IsZero() bool {
	return a.Raw == nil || a.Raw.Sign() == 0
}

// Decimal is the human-scale value.
func (a Amount) Decimal() decimal.Decimal {
	if a.Raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(a.Raw, -a.Token.Decimals)
}

// Fixed rounds the human-scale value to places, e.g. "360.00".
func (a Amount) Fixed(places int32) string {
	return a.Decimal().StringFixed(places)
}

func (a Amount) Add(b Amount) (Amount, error) {
	if !a.Token.Equal(b.Token) {
		return Amount{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, a.Token, b.Token)
	}
	return Amount{Token: a.Token, Raw: new(big.Int).Add(a.Raw, b.Raw)}, nil
}

func (a Amount) String() string {
	s, _ := ToDecimalString(a.Raw.String(), a.Token.Decimals)
	return s + " " + a.Token.String()
}

// PricedAmount is an Amount together with its price against a reference currency.
type PricedAmount struct {
	Amount
	Price Price
}

func NewPricedAmount(amount Amount, price Price) (PricedAmount, error) {
	if !amount.Token.Equal(price.Base) {
		return PricedAmount{}, fmt.Errorf("%w: amount in %s priced in %s", ErrCurrencyMismatch, amount.Token, price.Base)
	}
	return PricedAmount{Amount: amount, Price: price}, nil
}

// Value is the amount expressed in the price's quote currency.
func (p PricedAmount) Value() (Amount, error) {
	return p.Price.Convert(p.Amount)
}

// ValueIn composes the attached price with next (quote -> next.Quote) before converting.
func (p PricedAmount) ValueIn(next Price) (Amount, error) {
	composed, err := p.Price.Multiply(next)
	if err != nil {
		return Amount{}, err
	}
	return composed.Convert(p.Amount)
}
