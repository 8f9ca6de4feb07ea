package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.StrictCampaigns)
	assert.Equal(t, []ChainID{ChainMainnet, ChainGnosis, ChainArbitrumOne}, cfg.ChainIDs())
	assert.Equal(t, "100000000", cfg.Supply.InitialSupply)
	assert.Equal(t, int32(18), cfg.Supply.Decimals)
	assert.Len(t, cfg.Supply.Exclusions, 5)
	assert.Equal(t, "Arbitrum", cfg.Chains[ChainArbitrumOne].Name)
}

func TestLoadChainOverrides(t *testing.T) {
	t.Setenv("CHAINS", "mainnet, arbitrumOne")
	t.Setenv("ARBITRUM_ONE_RPC_URL", "http://localhost:8545")
	t.Setenv("MAINNET_FEE_RECEIVER", "0x0000000000000000000000000000000000000001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []ChainID{ChainMainnet, ChainArbitrumOne}, cfg.ChainIDs())
	assert.Equal(t, "http://localhost:8545", cfg.Chains[ChainArbitrumOne].RPCURL)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", cfg.Chains[ChainMainnet].FeeReceiver)
	assert.Equal(t, DefaultMulticallAddress, cfg.Chains[ChainMainnet].MulticallAddress)
}

func TestLoadRejectsUnknownChainSelection(t *testing.T) {
	t.Setenv("CHAINS", "polygon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaultExclusionsFollowChains(t *testing.T) {
	t.Setenv("CHAINS", "gnosis,arbitrumOne")

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Supply.Exclusions, 3)
	for _, ex := range cfg.Supply.Exclusions {
		assert.Equal(t, ChainArbitrumOne, ex.ChainID, ex.Label)
	}

	t.Setenv("CHAINS", "gnosis")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Supply.Exclusions)
}

func TestLoadExplicitExclusionOnUntrackedChain(t *testing.T) {
	t.Setenv("CHAINS", "gnosis")
	t.Setenv("SUPPLY_EXCLUSIONS", `[{"label":"dao","chain_id":1,"holder":"0x0000000000000000000000000000000000000002"}]`)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPPLY_EXCLUSIONS")
}

func TestLoadSupplyExclusions(t *testing.T) {
	t.Setenv("SUPPLY_INITIAL", "5000")
	t.Setenv("SUPPLY_EXCLUSIONS", `[{"label":"treasury","chain_id":100,"holder":"0x0000000000000000000000000000000000000002"}]`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Supply.InitialSupply)
	assert.Equal(t, []SupplyExclusion{
		{Label: "treasury", ChainID: ChainGnosis, Holder: "0x0000000000000000000000000000000000000002"},
	}, cfg.Supply.Exclusions)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"timeout", "HTTP_TIMEOUT", "soon"},
		{"strict", "STRICT_CAMPAIGNS", "maybe"},
		{"decimals", "SUPPLY_DECIMALS", "-1"},
		{"exclusions", "SUPPLY_EXCLUSIONS", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestEnvPrefix(t *testing.T) {
	assert.Equal(t, "ARBITRUM_ONE", envPrefix("arbitrumOne"))
	assert.Equal(t, "MAINNET", envPrefix("mainnet"))
	assert.Equal(t, "GNOSIS", envPrefix("gnosis"))
}
