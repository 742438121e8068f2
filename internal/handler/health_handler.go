package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// HealthChecker is a backing service probed by /health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	service string
	checks  map[string]HealthChecker
}

// NewHealthHandler reports service as healthy while every check passes.
// checks may be empty.
func NewHealthHandler(service string, checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{service: service, checks: checks}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c echo.Context) error {
	status := http.StatusOK
	body := map[string]interface{}{"status": "ok", "service": h.service}

	if len(h.checks) > 0 {
		results := make(map[string]string, len(h.checks))
		for name, check := range h.checks {
			if err := check.HealthCheck(c.Request().Context()); err != nil {
				log.Warn().Err(err).Str("check", name).Msg("health check failed")
				results[name] = "unavailable"
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				continue
			}
			results[name] = "ok"
		}
		body["checks"] = results
	}
	return c.JSON(status, body)
}
