package pricing

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	decimalNumeral = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	integerNumeral = regexp.MustCompile(`^[0-9]+$`)
)

// ParseDecimal parses a non-negative base-10 numeral. Signs, exponents and
// whitespace are rejected.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if !decimalNumeral.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseFixed scales a decimal string by 10^decimals. Excess fractional digits are
// truncated, never rounded.
func ParseFixed(s string, decimals int32) (*big.Int, error) {
	if decimals < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDecimals, decimals)
	}
	d, err := ParseDecimal(s)
	if err != nil {
		return nil, err
	}
	return d.Truncate(decimals).Shift(decimals).BigInt(), nil
}

// ToFixedPoint is ParseFixed rendered as a minimal-width base-10 integer string:
// ToFixedPoint("1.23456", 2) == "123".
func ToFixedPoint(s string, decimals int32) (string, error) {
	v, err := ParseFixed(s, decimals)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// ToDecimalString formats an integer magnitude with exactly `decimals` fractional
// digits. Trailing zeros are kept; see TrimDecimalString.
func ToDecimalString(s string, decimals int32) (string, error) {
	if decimals < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDecimals, decimals)
	}
	if !integerNumeral.MatchString(s) {
		return "", fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidAmount, s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidAmount, s)
	}
	return decimal.NewFromBigInt(v, -decimals).StringFixed(decimals), nil
}

// TrimDecimalString drops trailing fractional zeros and a dangling point.
func TrimDecimalString(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatUnits renders a raw magnitude for humans: trailing zeros trimmed but at
// least one fractional digit kept, e.g. "98240000.0".
func FormatUnits(raw *big.Int, decimals int32) string {
	if raw == nil {
		raw = new(big.Int)
	}
	s := decimal.NewFromBigInt(raw, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
