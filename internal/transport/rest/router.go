package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordroots/internal/config"
	"github.com/heartmarshall/wordroots/internal/metrics"
	"github.com/heartmarshall/wordroots/internal/transport/middleware"
)

// NewRouter wires the lookup API, health probes and, when m is non-nil and
// metrics are enabled, the Prometheus scrape endpoint.
func NewRouter(logger *slog.Logger, svc lookupService, m *metrics.Metrics, cfg config.Config, version string) http.Handler {
	lookup := NewLookupHandler(logger, svc)
	health := NewHealthHandler(svc, version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/anchors/{anchor}", lookup.Anchor)
	mux.HandleFunc("GET /api/v1/roots/{root}", lookup.Root)
	mux.HandleFunc("GET /api/v1/stats", lookup.Stats)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
	}
	if m != nil && cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler())
		mws = append(mws, middleware.Metrics(m))
	}
	mws = append(mws, middleware.CORS(cfg.CORS))

	return middleware.Chain(mws...)(mux)
}
