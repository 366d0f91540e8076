package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/domain"
)

type lookupService interface {
	Anchor(ctx context.Context, anchor string) (*domain.Group, error)
	Root(ctx context.Context, root string) ([]string, error)
	Info(ctx context.Context) corpus.Info
}

// LookupHandler serves the read-only anchor and root queries.
type LookupHandler struct {
	log *slog.Logger
	svc lookupService
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(logger *slog.Logger, svc lookupService) *LookupHandler {
	return &LookupHandler{log: logger.With("handler", "lookup"), svc: svc}
}

// GroupResponse is the JSON form of a vocabulary group. Synonyms and
// antonyms are omitted when empty; every other list is always present.
type GroupResponse struct {
	Anchor   string            `json:"anchor"`
	Meanings []string          `json:"meanings"`
	Synonyms []string          `json:"synonyms,omitempty"`
	Antonyms []string          `json:"antonyms,omitempty"`
	Roots    []RootRefResponse `json:"roots"`
	Derived  []DerivedResponse `json:"derived"`
	Contexts []string          `json:"contexts"`
}

// RootRefResponse is one root explanation of a group.
type RootRefResponse struct {
	Root    string `json:"root"`
	Meaning string `json:"meaning"`
}

// DerivedResponse is one derived word of a group.
type DerivedResponse struct {
	Word string `json:"word"`
	Root string `json:"root"`
}

// RootResponse lists the words of a root. Words form a set.
type RootResponse struct {
	Root  string   `json:"root"`
	Words []string `json:"words"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Anchor handles GET /api/v1/anchors/{anchor}.
func (h *LookupHandler) Anchor(w http.ResponseWriter, r *http.Request) {
	group, err := h.svc.Anchor(r.Context(), r.PathValue("anchor"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(group))
}

// Root handles GET /api/v1/roots/{root}.
func (h *LookupHandler) Root(w http.ResponseWriter, r *http.Request) {
	root := strings.TrimSpace(r.PathValue("root"))
	words, err := h.svc.Root(r.Context(), root)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RootResponse{Root: root, Words: words})
}

// Stats handles GET /api/v1/stats.
func (h *LookupHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Info(r.Context()))
}

func (h *LookupHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.log.ErrorContext(r.Context(), "lookup failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func toGroupResponse(g *domain.Group) GroupResponse {
	resp := GroupResponse{
		Anchor:   g.Anchor,
		Meanings: nonNil(g.Meanings),
		Synonyms: g.Synonyms,
		Antonyms: g.Antonyms,
		Roots:    make([]RootRefResponse, 0, len(g.Roots)),
		Derived:  make([]DerivedResponse, 0, len(g.Derived)),
		Contexts: nonNil(g.Contexts),
	}
	for _, r := range g.Roots {
		resp.Roots = append(resp.Roots, RootRefResponse{Root: r.Root, Meaning: r.Meaning})
	}
	for _, d := range g.Derived {
		resp.Derived = append(resp.Derived, DerivedResponse{Word: d.Word, Root: d.Root})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
