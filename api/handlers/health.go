// ABOUTME: Health handler reports host liveness and fact-check backend reachability
// ABOUTME: The backend is probed with a plain GET on its root

package handlers

import (
	"context"
	"net/http"
	"time"

	"fact-chex/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

const probeTimeout = 5 * time.Second

// CheckerCounter reports the number of live checkers
type CheckerCounter interface {
	Count() int
}

// HealthHandler handles health checks
type HealthHandler struct {
	prober   interfaces.BackendProber
	checkers CheckerCounter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(prober interfaces.BackendProber, checkers CheckerCounter) *HealthHandler {
	return &HealthHandler{
		prober:   prober,
		checkers: checkers,
	}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Always answers 200 while the host is up; factcheck_backend tells whether the fact-check service responds",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body struct {
		Status           string `json:"status" enum:"ok,degraded" doc:"ok when the backend is up"`
		FactCheckBackend string `json:"factcheck_backend" enum:"up,down" doc:"Fact-check service reachability"`
		BackendError     string `json:"backend_error,omitempty" doc:"Why the probe failed"`
		Checkers         int    `json:"checkers" doc:"Live checker count"`
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	output.Body.FactCheckBackend = "up"
	if h.checkers != nil {
		output.Body.Checkers = h.checkers.Count()
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := h.prober.Probe(probeCtx); err != nil {
		output.Body.Status = "degraded"
		output.Body.FactCheckBackend = "down"
		output.Body.BackendError = err.Error()
	}

	return output, nil
}
