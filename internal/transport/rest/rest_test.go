package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordroots/internal/config"
	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/metrics"
	"github.com/heartmarshall/wordroots/internal/service/lookup"
)

const testCorpus = `run dash sprint

clear <lucid> transparent; evident !opaque
{
(spec): to see
spectacle
spectator
}
[
"The instructions were clear."
]

futile <in vain>
`

func newTestRouter(t *testing.T, text string) (http.Handler, *metrics.Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	svc := lookup.NewService(logger, corpus.Load(text), m)
	cfg := config.Config{
		CORS:    config.CORSConfig{AllowedOrigins: "*"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	return NewRouter(logger, svc, m, cfg, "test-version"), m
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestAnchor_Found(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	rec := get(t, h, "/api/v1/anchors/clear")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var resp GroupResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "clear", resp.Anchor)
	assert.Equal(t, []string{"clear lucid transparent", "evident"}, resp.Meanings)
	assert.Equal(t, []string{"lucid", "transparent", "evident"}, resp.Synonyms)
	assert.Equal(t, []string{"opaque"}, resp.Antonyms)
	assert.Equal(t, []RootRefResponse{{Root: "spec", Meaning: "to see"}}, resp.Roots)
	assert.Equal(t, []DerivedResponse{{Word: "spectacle", Root: "spec"}, {Word: "spectator", Root: "spec"}}, resp.Derived)
	assert.Equal(t, []string{"The instructions were clear."}, resp.Contexts)
}

func TestAnchor_EmptySectionsOmitted(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, "laud")
	rec := get(t, h, "/api/v1/anchors/laud")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, `"synonyms"`)
	assert.NotContains(t, body, `"antonyms"`)
	assert.Contains(t, body, `"roots":[]`)
	assert.Contains(t, body, `"derived":[]`)
	assert.Contains(t, body, `"contexts":[]`)
}

func TestAnchor_EscapedPath(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	rec := get(t, h, "/api/v1/anchors/"+url.PathEscape("futile"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"in vain"`)
}

func TestAnchor_NotFound(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	rec := get(t, h, "/api/v1/anchors/walk")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "walk")
}

func TestAnchor_BlankIsBadRequest(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	rec := get(t, h, "/api/v1/anchors/%20")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoot_Found(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	rec := get(t, h, "/api/v1/roots/spec")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RootResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "spec", resp.Root)
	assert.ElementsMatch(t, []string{"clear", "spectacle", "spectator"}, resp.Words)
}

func TestRoot_NotFound(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/v1/roots/dur").Code)
}

func TestStats(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	rec := get(t, h, "/api/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var info corpus.Info
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
	assert.Equal(t, 3, info.Stats.Groups)
	assert.Equal(t, 1, info.Stats.Roots)
}

func TestHealthProbes(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)

	assert.Equal(t, http.StatusOK, get(t, h, "/live").Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/ready").Code)

	rec := get(t, h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test-version", resp.Version)
	assert.Equal(t, "ok", resp.Components["corpus"].Status)
}

func TestHealthProbes_EmptyCorpus(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, "")

	assert.Equal(t, http.StatusOK, get(t, h, "/live").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, h, "/ready").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, h, "/health").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	get(t, h, "/api/v1/anchors/run")
	get(t, h, "/api/v1/roots/nothing")

	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `wordroots_lookups_total{kind="anchor",outcome="hit"} 1`), body)
	assert.True(t, strings.Contains(body, `wordroots_lookups_total{kind="root",outcome="miss"} 1`), body)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, testCorpus)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/v2/anchors/run").Code)
}
