package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/philly/inkwell/internal/adapters/api"
)

// Version is reported by the health endpoints.
type Version string

// HealthCheck is one dependency probed by the readiness endpoint.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler struct {
	*BaseHandler
	version Version
	checks  []HealthCheck
}

func NewHealthHandler(base *BaseHandler, version Version, checks []HealthCheck) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		version:     version,
		checks:      checks,
	}
}

// GetLiveness implements the liveness probe endpoint
// This is a lightweight check with no external dependencies
func (h *HealthHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONResponse(w, r, api.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   string(h.version),
	}, http.StatusOK)
}

// GetReadiness implements the readiness probe endpoint
// This checks all critical dependencies
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	httpStatus := http.StatusOK
	checks := make(map[string]string, len(h.checks))

	if len(h.checks) == 0 {
		status = "degraded"
	}
	for _, c := range h.checks {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		err := c.Check(ctx)
		cancel()

		if err != nil {
			h.logger.Warn(r.Context(), "readiness check failed", "check", c.Name, "error", err)
			checks[c.Name] = "down"
			status = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
			continue
		}
		checks[c.Name] = "up"
	}

	h.WriteJSONResponse(w, r, api.HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Version:   string(h.version),
		Checks:    &checks,
	}, httpStatus)
}
