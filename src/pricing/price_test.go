package pricing

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lpAddress     = "0x1111111111111111111111111111111111111111"
	rewardAddress = "0x2222222222222222222222222222222222222222"
)

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

func testPair(t *testing.T) Pair {
	t.Helper()
	lp, err := NewToken(1, lpAddress, 18, "DXS", "DXswap")
	require.NoError(t, err)
	t0, err := NewToken(1, "0x3333333333333333333333333333333333333333", 18, "WETH", "Wrapped Ether")
	require.NoError(t, err)
	t1, err := NewToken(1, "0x4444444444444444444444444444444444444444", 6, "USDC", "USD Coin")
	require.NoError(t, err)
	return Pair{LiquidityToken: lp, Reserve0: ZeroAmount(t0), Reserve1: ZeroAmount(t1)}
}

func TestLPTokenPrice(t *testing.T) {
	pair := testPair(t)
	native := NativeCurrency(1, "ETH", 18)

	price, err := LPTokenPrice(pair, native, "200", "50")
	require.NoError(t, err)
	assert.Equal(t, "50000000000000000000", price.Numerator.String())
	assert.Equal(t, "200000000000000000000", price.Denominator.String())
	assert.Equal(t, "0.25", price.Decimal().String())

	staked, err := NewAmount(pair.LiquidityToken, "10")
	require.NoError(t, err)
	value, err := price.Convert(staked)
	require.NoError(t, err)
	assert.Equal(t, "2.500000000000000000", value.Fixed(18))
}

func TestLPTokenPriceZeroSupply(t *testing.T) {
	pair := testPair(t)
	native := NativeCurrency(1, "ETH", 18)

	price, err := LPTokenPrice(pair, native, "0", "3")
	require.NoError(t, err)
	assert.Equal(t, pow10(18).String(), price.Denominator.String())
	assert.Equal(t, "3000000000000000000", price.Numerator.String())

	_, err = LPTokenPrice(pair, native, "0.0000000000000000001", "3")
	assert.ErrorIs(t, err, ErrDivisionByZero, "non-zero supply truncating to zero must not fall back")
}

func TestNewPriceRejectsZeroDenominator(t *testing.T) {
	_, err := NewPrice(USD, USD, big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRewardPriceComposition(t *testing.T) {
	native := NativeCurrency(1, "ETH", 18)
	reward, err := NewToken(1, rewardAddress, 18, "SWPR", "Swapr")
	require.NoError(t, err)

	rewardInNative, err := NewPriceFromDecimal(reward, native, "0.002")
	require.NoError(t, err)
	nativeInUSD, err := NewPriceFromDecimal(native, USD, "1800.00")
	require.NoError(t, err)

	amount, err := NewAmount(reward, "100")
	require.NoError(t, err)
	priced, err := NewPricedAmount(amount, rewardInNative)
	require.NoError(t, err)

	inNative, err := priced.Value()
	require.NoError(t, err)
	assert.Equal(t, "0.20", inNative.Fixed(2))

	usd, err := priced.ValueIn(nativeInUSD)
	require.NoError(t, err)
	assert.Equal(t, "360.00", usd.Fixed(2))
	assert.Equal(t, "360000000000000000000", usd.Raw.String())

	stepwise, err := nativeInUSD.Convert(inNative)
	require.NoError(t, err)
	assert.Equal(t, usd.Raw.String(), stepwise.Raw.String())
}

func TestPriceFromDecimalAcrossDecimals(t *testing.T) {
	native := NativeCurrency(100, "XDAI", 18)
	usdc, err := NewToken(100, "0x5555555555555555555555555555555555555555", 6, "USDC", "USD Coin")
	require.NoError(t, err)

	price, err := NewPriceFromDecimal(usdc, native, "1.01")
	require.NoError(t, err)
	assert.Equal(t, "1000000", price.Denominator.String(), "one whole USDC")
	amount, err := NewAmount(usdc, "10")
	require.NoError(t, err)
	value, err := price.Convert(amount)
	require.NoError(t, err)
	assert.Equal(t, "10.10", value.Fixed(2))
}

func TestMultiplyRequiresMatchingCurrencies(t *testing.T) {
	native := NativeCurrency(1, "ETH", 18)
	reward, err := NewToken(1, rewardAddress, 18, "SWPR", "Swapr")
	require.NoError(t, err)

	a, err := NewPriceFromDecimal(reward, native, "1")
	require.NoError(t, err)
	_, err = a.Multiply(a)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	_, err = a.Convert(ZeroAmount(native))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestParseChecksumAddress(t *testing.T) {
	checksummed := "0xC6130400C1e3cD7b352Db75055dB9dD554E00Ef0"
	addr, err := ParseChecksumAddress(checksummed)
	require.NoError(t, err)
	assert.Equal(t, checksummed, addr.Hex())

	lower, err := ParseChecksumAddress("0xc6130400c1e3cd7b352db75055db9dd554e00ef0")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(checksummed), lower)

	_, err = ParseChecksumAddress("0xc6130400C1e3cD7b352Db75055dB9dD554E00Ef0")
	assert.ErrorIs(t, err, ErrInvalidAddress)
	_, err = ParseChecksumAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)
	_, err = NewToken(1, "not-an-address", 18, "X", "X")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestTokenEquality(t *testing.T) {
	a, err := NewToken(1, rewardAddress, 18, "SWPR", "Swapr")
	require.NoError(t, err)
	b, err := NewToken(1, rewardAddress, 6, "OTHER", "Other metadata")
	require.NoError(t, err)
	c, err := NewToken(100, rewardAddress, 18, "SWPR", "Swapr")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
