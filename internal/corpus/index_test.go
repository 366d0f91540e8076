package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordroots/internal/domain"
)

func TestLookupAnchor(t *testing.T) {
	t.Parallel()

	anchors := AnchorIndex{"laud": {Anchor: "laud"}}

	group, err := LookupAnchor(anchors, "laud")
	require.NoError(t, err)
	assert.Equal(t, "laud", group.Anchor)

	_, err = LookupAnchor(anchors, "Laud")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = LookupAnchor(AnchorIndex{}, "laud")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLookupRoot_Deduplicates(t *testing.T) {
	t.Parallel()

	roots := RootIndex{"dur": {"obdurate", "durable", "obdurate", "durable", "endure"}}

	words, err := LookupRoot(roots, "dur")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"obdurate", "durable", "endure"}, words)
	assert.Len(t, words, 3)
}

func TestLookupRoot_NotFound(t *testing.T) {
	t.Parallel()

	roots := RootIndex{"empty": {}}

	tests := []struct {
		name string
		root string
	}{
		{"absent root", "spec"},
		{"root mapped to empty list", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			words, err := LookupRoot(roots, tt.root)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Nil(t, words)
		})
	}
}
