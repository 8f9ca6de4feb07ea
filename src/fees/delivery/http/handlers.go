package http

import (
	"net/http"

	"github.com/MMN3003/swapr-metrics/src/fees/domain"
	"github.com/MMN3003/swapr-metrics/src/httpx"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/gin-gonic/gin"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.FeesUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.FeesUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/uncollected-protocol-fees", h.UncollectedProtocolFees)
}

// UncollectedProtocolFees godoc
//
//	@Summary		Uncollected protocol fees in USD
//	@Description	Value of the LP tokens held by the fee receiver on every tracked chain, per chain and in total.
//	@Tags			fees
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Failure		502	{object}	httpx.ErrorResponse
//	@Router			/uncollected-protocol-fees [get]
func (h *Handler) UncollectedProtocolFees(c *gin.Context) {
	report, err := h.service.UncollectedFees(c.Request.Context())
	if err != nil {
		httpx.Fail(c, h.logger, "UncollectedProtocolFees", err)
		return
	}
	c.JSON(http.StatusOK, ResponseFromDomain(report))
}
