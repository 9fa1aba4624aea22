package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/cyberui/internal/server/response"
)

// HandleHealth handles GET /health and GET /api/v1/health.
// @Summary Health check
// @Description Liveness check endpoint
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "cyberui-api",
		"version": h.app.Version(),
	})
}

// HandleReady handles GET /api/v1/ready.
// @Summary Readiness check
// @Description Readiness check including cache and catalog status
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	cat, err := h.app.Catalog()
	if err != nil {
		h.logger.Error().Err(err).Msg("Catalog not available")
		response.ServiceUnavailable(w, "Catalog not available")
		return
	}

	response.OK(w, map[string]any{
		"status":     "ready",
		"components": len(cat.Components()),
		"cache":      h.cache.GetStats(),
		"uptime":     time.Since(h.startTime).Round(time.Second).String(),
	})
}
