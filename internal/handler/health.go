package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/orrya/backend/internal/logging"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /health. It does not touch the datastore.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}

// Ready handles GET /health/ready by pinging the datastore.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	ts := h.now().UTC().Format(time.RFC3339Nano)
	if err := h.db.Ping(ctx); err != nil {
		logging.FromContext(r.Context()).Warn("readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Timestamp: ts})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ready", Timestamp: ts})
}
