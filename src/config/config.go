package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ChainID uint64

const (
	ChainMainnet     ChainID = 1
	ChainGnosis      ChainID = 100
	ChainArbitrumOne ChainID = 42161
)

// Multicall2 is deployed at the same address on every tracked chain.
const DefaultMulticallAddress = "0x5BA1e12693Dc8F9c48aAD8770482f4739bEeD696"

type Config struct {
	ListenAddr      string
	Env             string
	HTTPTimeout     time.Duration
	DatabaseURL     string
	SnapshotCron    string
	StrictCampaigns bool
	Chains          map[ChainID]ChainConfig
	Supply          SupplyConfig
	Provider        ProviderConfig
}

// ChainConfig is everything chain-specific the reports need. Adding a chain or
// rotating an address only touches this table.
type ChainConfig struct {
	ID               ChainID
	Key              string // used in env prefixes and report field names
	Name             string // used in pool identifiers
	SubgraphURL      string
	RPCURL           string
	MulticallAddress string
	FeeReceiver      string
	NativeSymbol     string
	NativeDecimals   int32
	GovernanceToken  string
}

type SupplyConfig struct {
	InitialSupply string
	Decimals      int32
	Exclusions    []SupplyExclusion
}

type SupplyExclusion struct {
	Label   string  `json:"label"`
	ChainID ChainID `json:"chain_id"`
	Holder  string  `json:"holder"`
}

type ProviderConfig struct {
	Name         string
	Logo         string
	URL          string
	PairLinkBase string
	Links        []ProviderLink
}

type ProviderLink struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	return cfg
}

// Load builds the configuration from the current environment without touching .env files.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT duration: %w", err)
	}
	strict, err := strconv.ParseBool(getEnv("STRICT_CAMPAIGNS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_CAMPAIGNS: %w", err)
	}

	chains, err := loadChains()
	if err != nil {
		return nil, err
	}
	supply, err := loadSupply(chains)
	if err != nil {
		return nil, err
	}

	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		Env:             getEnv("ENV", "dev"),
		HTTPTimeout:     timeout,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SnapshotCron:    getEnv("SNAPSHOT_SCHEDULE", "0 */15 * * * *"),
		StrictCampaigns: strict,
		Chains:          chains,
		Supply:          supply,
		Provider: ProviderConfig{
			Name:         getEnv("PROVIDER_NAME", "Swapr"),
			Logo:         getEnv("PROVIDER_LOGO", "https://swapr.eth.limo/favicon.png"),
			URL:          getEnv("PROVIDER_URL", "https://swapr.eth.limo"),
			PairLinkBase: getEnv("PROVIDER_PAIR_LINK_BASE", "https://swapr.eth.limo/#/pools"),
			Links: []ProviderLink{
				{Title: "Twitter", Link: "https://twitter.com/Swapr_dapp"},
				{Title: "Discord", Link: "https://discord.gg/cQcdACSSsF"},
				{Title: "Website", Link: "https://swapr.eth.limo"},
			},
		},
	}, nil
}

// ChainIDs returns the tracked chains in ascending id order.
func (c *Config) ChainIDs() []ChainID {
	ids := make([]ChainID, 0, len(c.Chains))
	for id := range c.Chains {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func defaultChains() []ChainConfig {
	return []ChainConfig{
		{
			ID:               ChainMainnet,
			Key:              "mainnet",
			Name:             "mainnet",
			SubgraphURL:      "https://api.thegraph.com/subgraphs/name/dxgraphs/swapr-mainnet-v2",
			RPCURL:           "https://mainnet.infura.io/v3/" + os.Getenv("INFURA_ID"),
			MulticallAddress: DefaultMulticallAddress,
			FeeReceiver:      "0xC6130400C1e3cD7b352Db75055dB9dD554E00Ef0",
			NativeSymbol:     "ETH",
			NativeDecimals:   18,
			GovernanceToken:  "0x6cacdb97e3fc8136805a9e7c342d866ab77d0957",
		},
		{
			ID:               ChainGnosis,
			Key:              "gnosis",
			Name:             "Gnosis Chain",
			SubgraphURL:      "https://api.thegraph.com/subgraphs/name/dxgraphs/swapr-xdai-v2",
			RPCURL:           "https://rpc.gnosischain.com/",
			MulticallAddress: DefaultMulticallAddress,
			FeeReceiver:      "0xa68Fad1e05a644414f4878Ce5C5357be634Bcf4c",
			NativeSymbol:     "XDAI",
			NativeDecimals:   18,
			GovernanceToken:  "0x532801ed6f82fffd2dab70a19fc2d7b2772c4f4b",
		},
		{
			ID:               ChainArbitrumOne,
			Key:              "arbitrumOne",
			Name:             "Arbitrum",
			SubgraphURL:      "https://api.thegraph.com/subgraphs/name/dxgraphs/swapr-arbitrum-one-v3",
			RPCURL:           "https://arb1.arbitrum.io/rpc",
			MulticallAddress: DefaultMulticallAddress,
			FeeReceiver:      "0xE8868A069a685747D9bDB0c444116Be03c67bb0c",
			NativeSymbol:     "ETH",
			NativeDecimals:   18,
			GovernanceToken:  "0xde903e2712288a1da82942dddf2c20529565ac30",
		},
	}
}

func loadChains() (map[ChainID]ChainConfig, error) {
	var enabled map[string]bool
	if raw := strings.TrimSpace(os.Getenv("CHAINS")); raw != "" {
		enabled = make(map[string]bool)
		for _, k := range strings.Split(raw, ",") {
			enabled[strings.TrimSpace(k)] = true
		}
	}

	chains := make(map[ChainID]ChainConfig)
	for _, c := range defaultChains() {
		if enabled != nil && !enabled[c.Key] {
			continue
		}
		prefix := envPrefix(c.Key)
		c.SubgraphURL = getEnv(prefix+"_SUBGRAPH_URL", c.SubgraphURL)
		c.RPCURL = getEnv(prefix+"_RPC_URL", c.RPCURL)
		c.MulticallAddress = getEnv(prefix+"_MULTICALL_ADDRESS", c.MulticallAddress)
		c.FeeReceiver = getEnv(prefix+"_FEE_RECEIVER", c.FeeReceiver)
		c.GovernanceToken = getEnv(prefix+"_GOVERNANCE_TOKEN", c.GovernanceToken)
		c.Name = getEnv(prefix+"_NAME", c.Name)
		chains[c.ID] = c
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("no chains enabled by CHAINS=%q", os.Getenv("CHAINS"))
	}
	return chains, nil
}

func defaultExclusions() []SupplyExclusion {
	return []SupplyExclusion{
		{Label: "mainnetDaoBalance", ChainID: ChainMainnet, Holder: "0xa953dEaDE87de58c5D539bF4104d233166C17827"},
		{Label: "burntBalance", ChainID: ChainMainnet, Holder: "0x0000000000000000000000000000000000000000"},
		{Label: "arbitrumOneDaoBalance", ChainID: ChainArbitrumOne, Holder: "0xF7505d655e28e746BAAC9646030C3F2193E3B542"},
		{Label: "swaprWalletSchemeBalance", ChainID: ChainArbitrumOne, Holder: "0x3172eDDa6ff8B2b2Fa7FeD40EE1fD92F1F4dd424"},
		{Label: "unconvertedBalance", ChainID: ChainArbitrumOne, Holder: "0x2b058af96175a847bf3e5457b3a702f807daddfd"},
	}
}

// loadSupply keeps only the default exclusions on tracked chains. Explicit
// SUPPLY_EXCLUSIONS must not name an untracked chain.
func loadSupply(chains map[ChainID]ChainConfig) (SupplyConfig, error) {
	decimals, err := strconv.ParseInt(getEnv("SUPPLY_DECIMALS", "18"), 10, 32)
	if err != nil || decimals < 0 {
		return SupplyConfig{}, fmt.Errorf("invalid SUPPLY_DECIMALS: %q", os.Getenv("SUPPLY_DECIMALS"))
	}

	var exclusions []SupplyExclusion
	if raw := os.Getenv("SUPPLY_EXCLUSIONS"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &exclusions); err != nil {
			return SupplyConfig{}, fmt.Errorf("invalid SUPPLY_EXCLUSIONS: %w", err)
		}
		for _, ex := range exclusions {
			if _, ok := chains[ex.ChainID]; !ok {
				return SupplyConfig{}, fmt.Errorf("invalid SUPPLY_EXCLUSIONS: %q is on chain %d, which CHAINS does not track", ex.Label, ex.ChainID)
			}
		}
	} else {
		for _, ex := range defaultExclusions() {
			if _, ok := chains[ex.ChainID]; ok {
				exclusions = append(exclusions, ex)
			}
		}
	}

	return SupplyConfig{
		InitialSupply: getEnv("SUPPLY_INITIAL", "100000000"),
		Decimals:      int32(decimals),
		Exclusions:    exclusions,
	}, nil
}

// envPrefix turns "arbitrumOne" into "ARBITRUM_ONE".
func envPrefix(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
