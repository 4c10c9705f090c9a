package handler

import (
	"context"
	"net/http"
	"time"

	"heyfarmer/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 2 * time.Second

// Pinger is the database handle probed by readiness checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthView is the probe body.
type HealthView struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Live reports that the process is serving.
func (h *HealthHandler) Live(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthView{Status: "ok"})
}

// Ready additionally pings the database.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return response.Success(c, http.StatusServiceUnavailable, HealthView{Status: "degraded", Database: "unreachable"})
	}

	return response.Success(c, http.StatusOK, HealthView{Status: "ok", Database: "ok"})
}
