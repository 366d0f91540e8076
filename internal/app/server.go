package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/heartmarshall/wordroots/internal/config"
	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/metrics"
	"github.com/heartmarshall/wordroots/internal/service/lookup"
	"github.com/heartmarshall/wordroots/internal/transport/rest"
)

// NewLookupService wraps idx in a lookup service. m may be nil.
func NewLookupService(logger *slog.Logger, idx *corpus.Index, m *metrics.Metrics) *lookup.Service {
	if m == nil {
		return lookup.NewService(logger, idx, nil)
	}
	return lookup.NewService(logger, idx, m)
}

// Server serves the lookup API until its context is cancelled.
type Server struct {
	log  *slog.Logger
	cfg  config.ServerConfig
	http *http.Server
}

// NewServer builds the HTTP API over idx. m may be nil.
func NewServer(logger *slog.Logger, cfg config.Config, idx *corpus.Index, m *metrics.Metrics) *Server {
	svc := NewLookupService(logger, idx, m)
	if !cfg.Metrics.Enabled {
		m = nil
	}
	handler := rest.NewRouter(logger, svc, m, cfg, BuildVersion())

	return &Server{
		log: logger,
		cfg: cfg.Server,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Run listens on the configured address.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln. When ctx is done the server drains
// in-flight requests for at most ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.log.Error("server shutdown error", slog.String("error", err.Error()))
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.log.Info("http server stopped")
	return nil
}
