// Package handler provides HTTP handlers for the Plateful API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/api/response"
	"github.com/plateful/plateful/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string

	// pool is pinged for readiness; nil skips the check.
	pool *pgxpool.Pool
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, pool *pgxpool.Pool) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		pool:      pool,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if h.pool != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.pool.Ping(ctx); err != nil {
			health.Status = models.HealthStatusFail
			health.Details = map[string]interface{}{"database": err.Error()}
			response.JSON(w, r, http.StatusServiceUnavailable, health)
			return
		}
	}

	// An open circuit to an upstream provider degrades the service but
	// does not make it unready; core meal logging keeps working.
	for _, p := range resilience.GlobalRegistry.GetAllHealth() {
		if p.IsHealthy() {
			continue
		}
		if health.Details == nil {
			health.Details = map[string]interface{}{}
		}
		health.Details[p.Name] = p.CircuitState.String()
		health.Status = models.HealthStatusDegraded
	}

	response.JSON(w, r, http.StatusOK, health)
}
