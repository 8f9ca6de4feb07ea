// Package httpx holds the gin helpers shared by every report handler.
package httpx

import (
	"errors"
	"net/http"

	"github.com/MMN3003/swapr-metrics/src/Infrastructure/ethereum"
	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	"github.com/MMN3003/swapr-metrics/src/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed report request.
type ErrorResponse struct {
	Error string `json:"error" example:"upstream unavailable"`
}

// StatusFor maps a report failure to its HTTP status. Upstream failures are 502,
// everything else is 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, subgraph.ErrNetwork),
		errors.Is(err, subgraph.ErrSchema),
		errors.Is(err, ethereum.ErrMulticall),
		errors.Is(err, ethereum.ErrDecode),
		errors.Is(err, ethereum.ErrConnectNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Fail logs err and aborts the request without any partial result.
func Fail(c *gin.Context, l *logger.Logger, op string, err error) {
	l.WithField("request_id", c.GetString(RequestIDKey)).Errorf("%s err: %v", op, err)
	status := StatusFor(err)
	msg := "internal server error"
	if status == http.StatusBadGateway {
		msg = "upstream unavailable"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}
