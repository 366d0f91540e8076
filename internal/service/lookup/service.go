// Package lookup answers anchor and root queries against a loaded corpus
// index. It is shared by the interactive loop and the HTTP API.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/domain"
	"github.com/heartmarshall/wordroots/internal/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type index interface {
	LookupAnchor(anchor string) (*domain.Group, error)
	LookupRoot(root string) ([]string, error)
	Info() corpus.Info
}

type recorder interface {
	ObserveLookup(kind, outcome string, words int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveLookup(string, string, int) {}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements read-only lookups over one corpus index.
type Service struct {
	log     *slog.Logger
	index   index
	metrics recorder
}

// NewService creates a lookup service. rec may be nil.
func NewService(logger *slog.Logger, idx index, rec recorder) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Service{
		log:     logger.With("service", "lookup"),
		index:   idx,
		metrics: rec,
	}
}

// Anchor returns the group stored under the given anchor word.
// Surrounding whitespace is ignored; matching is exact otherwise.
func (s *Service) Anchor(ctx context.Context, anchor string) (*domain.Group, error) {
	anchor = strings.TrimSpace(anchor)
	if anchor == "" {
		s.metrics.ObserveLookup(metrics.KindAnchor, metrics.OutcomeInvalid, 0)
		return nil, domain.NewValidationError("anchor", "required")
	}

	group, err := s.index.LookupAnchor(anchor)
	if err != nil {
		s.observeMiss(ctx, metrics.KindAnchor, anchor, err)
		return nil, err
	}

	s.metrics.ObserveLookup(metrics.KindAnchor, metrics.OutcomeHit, 0)
	return group, nil
}

// Root returns the distinct words associated with root. The order of the
// returned words carries no meaning.
func (s *Service) Root(ctx context.Context, root string) ([]string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		s.metrics.ObserveLookup(metrics.KindRoot, metrics.OutcomeInvalid, 0)
		return nil, domain.NewValidationError("root", "required")
	}

	words, err := s.index.LookupRoot(root)
	if err != nil {
		s.observeMiss(ctx, metrics.KindRoot, root, err)
		return nil, err
	}

	s.metrics.ObserveLookup(metrics.KindRoot, metrics.OutcomeHit, len(words))
	return words, nil
}

// Info returns the identity and statistics of the served index.
func (s *Service) Info(_ context.Context) corpus.Info {
	return s.index.Info()
}

func (s *Service) observeMiss(ctx context.Context, kind, query string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.ObserveLookup(kind, metrics.OutcomeMiss, 0)
		s.log.DebugContext(ctx, "lookup miss",
			slog.String("kind", kind),
			slog.String("query", query),
		)
		return
	}
	s.log.ErrorContext(ctx, "lookup failed",
		slog.String("kind", kind),
		slog.String("query", query),
		slog.String("error", err.Error()),
	)
}
