package usecase

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/ethereum"
	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/fees/domain"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePairs struct {
	pairs    []domain.RawPair
	requests []string
	err      error
}

func (f *fakePairs) PairsPage(_ context.Context, afterID string, first int) ([]domain.RawPair, error) {
	f.requests = append(f.requests, afterID)
	if f.err != nil {
		return nil, f.err
	}
	start := 0
	if afterID != "" {
		for i, p := range f.pairs {
			if p.ID == afterID {
				start = i + 1
				break
			}
		}
	}
	end := min(start+first, len(f.pairs))
	return f.pairs[start:end], nil
}

type fakeBalances struct {
	byPair  map[common.Address]*big.Int
	queries []ethereum.BalanceQuery
	calls   int
}

func (f *fakeBalances) BalanceOf(_ context.Context, queries []ethereum.BalanceQuery) ([]*big.Int, error) {
	f.calls++
	f.queries = append(f.queries, queries...)
	out := make([]*big.Int, len(queries))
	for i, q := range queries {
		if v, ok := f.byPair[q.Token]; ok {
			out[i] = v
		} else {
			out[i] = new(big.Int)
		}
	}
	return out, nil
}

func pairID(i int) string {
	return fmt.Sprintf("0x%040x", i+1)
}

func makePairs(n int) []domain.RawPair {
	pairs := make([]domain.RawPair, n)
	for i := range pairs {
		pairs[i] = domain.RawPair{ID: pairID(i), TotalSupply: "100", ReserveUSD: "5000"}
	}
	return pairs
}

func eth(t *testing.T, s string) *big.Int {
	v, err := pricing.ParseFixed(s, 18)
	require.NoError(t, err)
	return v
}

var receiver = common.HexToAddress("0x00000000000000000000000000000000000000fe")

func TestAllPairsPagination(t *testing.T) {
	src := &fakePairs{pairs: makePairs(2400)}
	balances := &fakeBalances{}
	svc := NewService(map[config.ChainID]domain.ChainSource{
		config.ChainMainnet: {Key: "mainnet", FeeReceiver: receiver, Pairs: src, Balances: balances},
	}, logger.Nop())

	report, err := svc.UncollectedFees(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", pairID(999), pairID(1999)}, src.requests)
	assert.Equal(t, 1, balances.calls)
	require.Len(t, balances.queries, 2400)
	assert.Equal(t, receiver, balances.queries[0].Holder)
	assert.Equal(t, common.HexToAddress(pairID(2399)), balances.queries[2399].Token)
	assert.Equal(t, 2400, report.Chains[0].Pairs)
	assert.Equal(t, "0.000", report.Total.Fixed(3))
}

func TestAllPairsExactMultipleNeedsEmptyPage(t *testing.T) {
	src := &fakePairs{pairs: makePairs(1000)}
	pairs, err := AllPairs(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, pairs, 1000)
	assert.Len(t, src.requests, 2)
}

func TestUncollectedFeesUSD(t *testing.T) {
	mainnetPairs := []domain.RawPair{
		{ID: pairID(0), TotalSupply: "100", ReserveUSD: "5000"},
		{ID: pairID(1), TotalSupply: "10", ReserveUSD: "999999"},
		{ID: pairID(2), TotalSupply: "3", ReserveUSD: "1"},
	}
	gnosisPairs := []domain.RawPair{
		{ID: pairID(7), TotalSupply: "0", ReserveUSD: "0"},
		{ID: pairID(8), TotalSupply: "2", ReserveUSD: "10.5"},
	}
	svc := NewService(map[config.ChainID]domain.ChainSource{
		config.ChainMainnet: {
			Key: "mainnet", FeeReceiver: receiver,
			Pairs: &fakePairs{pairs: mainnetPairs},
			Balances: &fakeBalances{byPair: map[common.Address]*big.Int{
				common.HexToAddress(pairID(0)): eth(t, "2"),
				common.HexToAddress(pairID(2)): eth(t, "1"),
			}},
		},
		config.ChainGnosis: {
			Key: "gnosis", FeeReceiver: receiver,
			Pairs: &fakePairs{pairs: gnosisPairs},
			Balances: &fakeBalances{byPair: map[common.Address]*big.Int{
				common.HexToAddress(pairID(8)): eth(t, "1"),
			}},
		},
	}, logger.Nop())

	report, err := svc.UncollectedFees(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Chains, 2)

	// 5000/100*2 + 1/3*1
	assert.Equal(t, "mainnet", report.Chains[0].Key)
	assert.Equal(t, "100.333", report.Chains[0].USD.Fixed(3))
	// the zero-supply pair holds nothing and is skipped
	assert.Equal(t, "gnosis", report.Chains[1].Key)
	assert.Equal(t, "5.250", report.Chains[1].USD.Fixed(3))
	assert.Equal(t, "105.583", report.Total.Fixed(3))
}

func TestUncollectedFeesZeroSupplyWithBalance(t *testing.T) {
	svc := NewService(map[config.ChainID]domain.ChainSource{
		config.ChainMainnet: {
			Key: "mainnet", FeeReceiver: receiver,
			Pairs: &fakePairs{pairs: []domain.RawPair{{ID: pairID(0), TotalSupply: "0", ReserveUSD: "10"}}},
			Balances: &fakeBalances{byPair: map[common.Address]*big.Int{
				common.HexToAddress(pairID(0)): big.NewInt(1),
			}},
		},
	}, logger.Nop())

	_, err := svc.UncollectedFees(context.Background())
	assert.ErrorIs(t, err, pricing.ErrDivisionByZero)
}

func TestUncollectedFeesFailsWholeReport(t *testing.T) {
	svc := NewService(map[config.ChainID]domain.ChainSource{
		config.ChainMainnet: {Key: "mainnet", Pairs: &fakePairs{pairs: makePairs(3)}, Balances: &fakeBalances{}},
		config.ChainGnosis:  {Key: "gnosis", Pairs: &fakePairs{err: subgraph.ErrNetwork}, Balances: &fakeBalances{}},
	}, logger.Nop())

	report, err := svc.UncollectedFees(context.Background())
	assert.ErrorIs(t, err, subgraph.ErrNetwork)
	assert.Nil(t, report)
}
