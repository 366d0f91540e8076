package corpus

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordroots/internal/domain"
)

// AnchorIndex maps an anchor word to its group. The last parsed group with
// a given anchor wins.
type AnchorIndex map[string]*domain.Group

// RootIndex maps a root to every word contributed for it, in contribution
// order and with duplicates.
type RootIndex map[string][]string

// Index is the read-only result of Load.
type Index struct {
	// ID identifies this load; a reload produces a new ID.
	ID       uuid.UUID
	LoadedAt time.Time

	Anchors AnchorIndex
	Roots   RootIndex
	// Groups lists every parsed group in corpus order, including groups
	// whose anchor entry was later overwritten.
	Groups []*domain.Group
	Stats  Stats
}

// Stats summarizes one corpus load.
type Stats struct {
	Groups     int `json:"groups"`
	Skipped    int `json:"skipped"`
	Anchors    int `json:"anchors"`
	Collisions int `json:"collisions"`
	Roots      int `json:"roots"`
	RootRefs   int `json:"root_refs"`
	Derived    int `json:"derived"`
	Contexts   int `json:"contexts"`
}

// LookupAnchor returns the group stored under anchor.
func LookupAnchor(anchors AnchorIndex, anchor string) (*domain.Group, error) {
	group, ok := anchors[anchor]
	if !ok {
		return nil, fmt.Errorf("anchor %q: %w", anchor, domain.ErrNotFound)
	}
	return group, nil
}

// LookupRoot returns the distinct words recorded for root. Callers must
// treat the result as a set; duplicates are dropped keeping the first
// contribution. A root with no words is reported as not found.
func LookupRoot(roots RootIndex, root string) ([]string, error) {
	words := roots[root]
	if len(words) == 0 {
		return nil, fmt.Errorf("root %q: %w", root, domain.ErrNotFound)
	}

	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, nil
}

// LookupAnchor looks anchor up in the index's anchor map.
func (idx *Index) LookupAnchor(anchor string) (*domain.Group, error) {
	return LookupAnchor(idx.Anchors, anchor)
}

// LookupRoot looks root up in the index's root map.
func (idx *Index) LookupRoot(root string) ([]string, error) {
	return LookupRoot(idx.Roots, root)
}

// Info describes a loaded index.
type Info struct {
	ID       uuid.UUID `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`
	Stats    Stats     `json:"stats"`
}

// Info returns the identity and statistics of the index.
func (idx *Index) Info() Info {
	return Info{ID: idx.ID, LoadedAt: idx.LoadedAt, Stats: idx.Stats}
}
