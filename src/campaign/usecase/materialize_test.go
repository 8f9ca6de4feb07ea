package usecase

import (
	"testing"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	weth     = "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
	dai      = "0x6b175474e89094c44da98b954eedeac495271d0f"
	swprAddr = "0x6cacdb97e3fc8136805a9e7c342d866ab77d0957"
	lpAddr   = "0x00000000000000000000000000000000000000a1"
)

func rawToken(address, symbol string, decimals int) domain.RawToken {
	return domain.RawToken{Address: address, Name: symbol, Symbol: symbol, Decimals: subgraph.Int(decimals)}
}

func rawCampaign(address, lp string) domain.RawCampaign {
	return domain.RawCampaign{
		Address:      address,
		Duration:     1000,
		StartsAt:     1000,
		EndsAt:       2000,
		StakingCap:   "0",
		StakedAmount: "10",
		Rewards: []domain.RawReward{{
			Amount: "100",
			Token: domain.RawRewardToken{
				RawToken:              rawToken(swprAddr, "SWPR", 18),
				DerivedNativeCurrency: "0.002",
			},
		}},
		StakablePair: domain.RawPair{
			Address:               lp,
			Token0:                rawToken(dai, "DAI", 18),
			Token1:                rawToken(weth, "WETH", 18),
			Reserve0:              "18000",
			Reserve1:              "10",
			ReserveNativeCurrency: "20",
			TotalSupply:           "100",
		},
	}
}

func native() pricing.Token {
	return pricing.NativeCurrency(uint64(config.ChainMainnet), "ETH", 18)
}

func materializeRaw(t *testing.T, raw domain.RawCampaign) (domain.Campaign, error) {
	t.Helper()
	pair, err := PairFromRaw(config.ChainMainnet, raw.StakablePair)
	require.NoError(t, err)
	return MaterializeCampaign(raw, pair, native(), raw.StakablePair.TotalSupply, raw.StakablePair.ReserveNativeCurrency)
}

func TestMaterializeCampaign(t *testing.T) {
	c, err := materializeRaw(t, rawCampaign("0x00000000000000000000000000000000000000c1", lpAddr))
	require.NoError(t, err)

	assert.Equal(t, config.ChainMainnet, c.ChainID)
	assert.Equal(t, int64(1000), c.StartsAt)
	assert.Equal(t, int64(2000), c.EndsAt)
	assert.Equal(t, "DAI", c.Pair.Token0().Symbol)
	assert.Equal(t, domain.LiquidityTokenSymbol, c.Pair.LiquidityToken.Symbol)

	// 20 native across 100 LP tokens, 10 staked
	staked, err := c.Staked.Value()
	require.NoError(t, err)
	assert.Equal(t, "2.00", staked.Fixed(2))
	assert.True(t, c.StakingCap.IsZero())

	require.Len(t, c.Rewards, 1)
	reward, err := c.Rewards[0].Value()
	require.NoError(t, err)
	assert.Equal(t, "0.2", pricing.FormatUnits(reward.Raw, 18))
}

func TestRewardValueInUSD(t *testing.T) {
	c, err := materializeRaw(t, rawCampaign("0x00000000000000000000000000000000000000c1", lpAddr))
	require.NoError(t, err)

	nativeUSD, err := pricing.NewPriceFromDecimal(native(), pricing.USD, "1800.00")
	require.NoError(t, err)
	usd, err := c.Rewards[0].ValueIn(nativeUSD)
	require.NoError(t, err)
	assert.Equal(t, "360.00", usd.Fixed(2))
	assert.Equal(t, "360.0", pricing.FormatUnits(usd.Raw, usd.Token.Decimals))
}

func TestMaterializeCampaignInvalidAddress(t *testing.T) {
	cases := map[string]func(*domain.RawCampaign){
		"campaign": func(r *domain.RawCampaign) { r.Address = "0xnot-an-address" },
		"reward":   func(r *domain.RawCampaign) { r.Rewards[0].Token.Address = "0x6CACdb97e3fc8136805a9e7c342d866ab77d0957" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			raw := rawCampaign("0x00000000000000000000000000000000000000c1", lpAddr)
			mutate(&raw)
			_, err := materializeRaw(t, raw)
			assert.ErrorIs(t, err, pricing.ErrInvalidAddress)
		})
	}
}

func TestPairFromRawInvalidAddress(t *testing.T) {
	raw := rawCampaign("0x00000000000000000000000000000000000000c1", lpAddr)
	raw.StakablePair.Token1.Address = "0x1234"
	_, err := PairFromRaw(config.ChainMainnet, raw.StakablePair)
	assert.ErrorIs(t, err, pricing.ErrInvalidAddress)
}

func TestMaterializeCampaignUnfundedPair(t *testing.T) {
	raw := rawCampaign("0x00000000000000000000000000000000000000c1", lpAddr)
	raw.StakablePair.TotalSupply = "0"
	raw.StakablePair.ReserveNativeCurrency = "0"
	raw.StakedAmount = "0"

	c, err := materializeRaw(t, raw)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", c.Staked.Price.Denominator.String())
}
