package pricing

import "errors"

var (
	ErrInvalidAmount    = errors.New("invalid decimal amount")
	ErrInvalidDecimals  = errors.New("invalid decimals")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)
