package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	report *domain.Report
	err    error
}

func (s stubService) Pools(context.Context) (*domain.Report, error) {
	return s.report, s.err
}

var provider = config.ProviderConfig{
	Name:  "Swapr",
	Logo:  "https://swapr.eth.limo/favicon.png",
	URL:   "https://swapr.eth.limo",
	Links: []config.ProviderLink{{Title: "Website", Link: "https://swapr.eth.limo"}},
}

func serve(svc domain.PoolsUseCase) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc, provider, logger.Nop()).RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pools", nil))
	return w
}

func TestListPools(t *testing.T) {
	tvl, err := pricing.NewAmount(pricing.USD, "1500000.004")
	require.NoError(t, err)

	w := serve(stubService{report: &domain.Report{
		TVLUSD: tvl,
		Pools: []domain.Pool{{
			Identifier:      "Swapr DAI-WETH on mainnet 1",
			LiquidityLocked: decimal.RequireFromString("3600.50"),
			Pair:            "DAI-WETH",
			PairLink:        "https://swapr.eth.limo/#/pools/0xa/0xb?chainId=1",
			PoolRewards:     []string{"SWPR"},
			TotalStakedUSD:  decimal.RequireFromString("3600.5"),
			APR:             decimal.RequireFromString("12.34"),
		}},
	}})
	require.Equal(t, http.StatusOK, w.Code)

	var body PoolsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Swapr", body.Provider)
	assert.Equal(t, "https://swapr.eth.limo", body.ProviderURL)
	assert.Equal(t, "1500000.00", body.TVLUSD)
	require.Len(t, body.Pools, 1)
	assert.Equal(t, "Swapr DAI-WETH on mainnet 1", body.Pools[0].Identifier)
	assert.Equal(t, 3600.5, body.Pools[0].LiquidityLocked)
	assert.Equal(t, 3600.5, body.Pools[0].TotalStakedUSD)
	assert.Equal(t, 12.34, body.Pools[0].APR)
	assert.Contains(t, w.Body.String(), `"liquidity_locked":3600.5`)
}

func TestListPoolsEmptyIsArray(t *testing.T) {
	w := serve(stubService{report: &domain.Report{TVLUSD: pricing.ZeroAmount(pricing.USD), Pools: []domain.Pool{}}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pools":[]`)
}

func TestListPoolsSchemaError(t *testing.T) {
	w := serve(stubService{err: subgraph.ErrSchema})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
