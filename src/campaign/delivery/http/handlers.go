package http

import (
	"net/http"

	"github.com/MMN3003/swapr-metrics/src/campaign/domain"
	"github.com/MMN3003/swapr-metrics/src/config"
	"github.com/MMN3003/swapr-metrics/src/httpx"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/gin-gonic/gin"
)

// Handler binds usecase + logger
type Handler struct {
	service  domain.PoolsUseCase
	provider config.ProviderConfig
	logger   *logger.Logger
}

func NewHandler(s domain.PoolsUseCase, provider config.ProviderConfig, l *logger.Logger) *Handler {
	return &Handler{service: s, provider: provider, logger: l}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/pools", h.ListPools)
}

// ListPools godoc
//
//	@Summary		List active liquidity-mining pools
//	@Description	Every active campaign on every tracked chain with APR, staked and locked USD, and the protocol TVL.
//	@Tags			pools
//	@Produce		json
//	@Success		200	{object}	PoolsResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Failure		502	{object}	httpx.ErrorResponse
//	@Router			/pools [get]
func (h *Handler) ListPools(c *gin.Context) {
	report, err := h.service.Pools(c.Request.Context())
	if err != nil {
		httpx.Fail(c, h.logger, "ListPools", err)
		return
	}
	c.JSON(http.StatusOK, PoolsResponseFromDomain(report, h.provider))
}
