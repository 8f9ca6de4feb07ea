package http

import (
	"net/http"

	"github.com/MMN3003/swapr-metrics/src/httpx"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/MMN3003/swapr-metrics/src/supply/domain"
	"github.com/gin-gonic/gin"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.SupplyUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.SupplyUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/circulating-supply", h.CirculatingSupply)
}

// CirculatingSupply godoc
//
//	@Summary		Circulating supply of the governance token
//	@Description	Initial supply minus treasury, burnt and unconverted balances across chains. With format=raw only the number is returned as text.
//	@Tags			supply
//	@Produce		json
//	@Produce		plain
//	@Param			format	query		string	false	"raw for a plain-text number"
//	@Success		200		{object}	map[string]string
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Failure		502		{object}	httpx.ErrorResponse
//	@Router			/circulating-supply [get]
func (h *Handler) CirculatingSupply(c *gin.Context) {
	report, err := h.service.CirculatingSupply(c.Request.Context())
	if err != nil {
		httpx.Fail(c, h.logger, "CirculatingSupply", err)
		return
	}

	if c.Query("format") == "raw" {
		c.String(http.StatusOK, pricing.FormatUnits(report.CirculatingSupply, report.Decimals))
		return
	}
	c.JSON(http.StatusOK, ResponseFromDomain(report))
}
