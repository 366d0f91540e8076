// Package app assembles the wordroots components: logging, corpus loading
// and the HTTP server.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/metrics"
)

// LoadCorpusFile reads the corpus at path and builds its index. m may be nil.
func LoadCorpusFile(logger *slog.Logger, path string, m *metrics.Metrics) (*corpus.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	start := time.Now()
	idx := corpus.Load(string(data))
	elapsed := time.Since(start)

	logger.Info("corpus loaded",
		slog.String("path", path),
		slog.String("index_id", idx.ID.String()),
		slog.Int("groups", idx.Stats.Groups),
		slog.Int("skipped", idx.Stats.Skipped),
		slog.Int("anchors", idx.Stats.Anchors),
		slog.Int("collisions", idx.Stats.Collisions),
		slog.Int("roots", idx.Stats.Roots),
		slog.Duration("elapsed", elapsed),
	)
	if idx.Stats.Collisions > 0 {
		logger.Warn("duplicate anchors replaced by later groups",
			slog.Int("collisions", idx.Stats.Collisions),
		)
	}

	if m != nil {
		m.ObserveLoad(idx.Stats, elapsed.Seconds())
	}

	return idx, nil
}
