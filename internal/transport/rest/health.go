package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/wordroots/internal/corpus"
)

// indexInfo defines the minimal interface for index health checks.
type indexInfo interface {
	Info(ctx context.Context) corpus.Info
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	index   indexInfo
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(index indexInfo, version string) *HealthHandler {
	return &HealthHandler{index: index, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the index holds at least one
// group, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.index.Info(r.Context()).Stats.Groups == 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Reports the index identity and load
// time together with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	info := h.index.Info(r.Context())

	overallStatus := "ok"
	comp := CompStatus{
		Status:  "ok",
		Details: info.ID.String() + " loaded " + info.LoadedAt.Format(time.RFC3339),
	}
	if info.Stats.Groups == 0 {
		overallStatus = "down"
		comp = CompStatus{Status: "down", Details: "corpus has no groups"}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: map[string]CompStatus{"corpus": comp},
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
