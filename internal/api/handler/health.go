package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks the session store before declaring the portal ready; the upstream
// backend is deliberately not probed, its availability is surfaced per
// request instead.
type ReadinessHandler struct {
	redis *redis.Client
}

func NewReadinessHandler(rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	resp := readinessResponse{
		Status:       "ready",
		Dependencies: map[string]dependencyStatus{},
	}
	code := http.StatusOK

	if err := h.redis.Ping(ctx).Err(); err != nil {
		resp.Status = "not_ready"
		resp.Dependencies["redis"] = dependencyStatus{Status: "down", Error: err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		resp.Dependencies["redis"] = dependencyStatus{Status: "up"}
	}

	return c.JSON(code, resp)
}
