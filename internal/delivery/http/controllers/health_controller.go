package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventmanagement/internal/delivery/http/helpers"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck checks one dependency. Check returns nil when the dependency is reachable.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type HealthController struct {
	Logger *slog.Logger
	Checks []HealthCheck
}

func NewHealthController(logger *slog.Logger, checks ...HealthCheck) *HealthController {
	return &HealthController{
		Logger: logger,
		Checks: checks,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports "ok" when every dependency answers, otherwise 503 with the failing checks.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data: HealthResponse"
// @Failure 503 {object} helpers.APIResponse "data: HealthResponse"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(c.Checks))}
	for _, hc := range c.Checks {
		if err := hc.Check(ctx); err != nil {
			c.Logger.WarnContext(ctx, "health check failed", "check", hc.Name, "err", err)
			resp.Status = "degraded"
			resp.Checks[hc.Name] = "down"
			continue
		}
		resp.Checks[hc.Name] = "up"
	}
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	helpers.WriteJSONSuccess(w, status, resp)
}
