package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MMN3003/swapr-metrics/src/httpx"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/MMN3003/swapr-metrics/src/snapshot/domain"
	"github.com/gin-gonic/gin"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.SnapshotUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.SnapshotUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/snapshots/:kind/latest", h.Latest)
}

const takenAtHeader = "X-Snapshot-Taken-At"

// Latest godoc
//
//	@Summary		Latest stored report
//	@Description	The most recent scheduled snapshot of a report, byte for byte as the live endpoint rendered it.
//	@Tags			snapshots
//	@Produce		json
//	@Param			kind	path		string	true	"circulating-supply, uncollected-protocol-fees or pools"
//	@Success		200		{object}	object
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/snapshots/{kind}/latest [get]
func (h *Handler) Latest(c *gin.Context) {
	snap, err := h.service.Latest(c.Request.Context(), domain.Kind(c.Param("kind")))
	switch {
	case errors.Is(err, domain.ErrUnknownKind), errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, httpx.ErrorResponse{Error: "snapshot not found"})
		return
	case err != nil:
		httpx.Fail(c, h.logger, "LatestSnapshot", err)
		return
	}

	c.Header(takenAtHeader, snap.TakenAt.UTC().Format(time.RFC3339))
	c.Data(http.StatusOK, "application/json; charset=utf-8", snap.Body)
}
