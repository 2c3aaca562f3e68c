package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HealthHandler serves liveness and readiness probes over HTTP.
type HealthHandler struct {
	logger *slog.Logger
	ready  func() error
}

// NewHealthHandler creates a health check HTTP handler. The ready func is
// consulted by the readiness probe; nil means always ready.
func NewHealthHandler(logger *slog.Logger, ready func() error) *HealthHandler {
	return &HealthHandler{logger: logger, ready: ready}
}

// RegisterRoutes attaches health-check routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "financing-service",
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			h.logger.WarnContext(r.Context(), "readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":  "not ready",
				"service": "financing-service",
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "financing-service",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
