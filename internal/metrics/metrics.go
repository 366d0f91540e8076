// Package metrics defines the Prometheus collectors for corpus loading,
// lookups and the HTTP API, and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/wordroots/internal/corpus"
)

// Lookup kinds and outcomes used as label values.
const (
	KindAnchor = "anchor"
	KindRoot   = "root"

	OutcomeHit     = "hit"
	OutcomeMiss    = "miss"
	OutcomeInvalid = "invalid"
)

// Metrics holds all Prometheus collectors of the application.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	LookupsTotal         *prometheus.CounterVec
	RootWordsReturned    prometheus.Histogram
	CorpusGroups         *prometheus.GaugeVec
	CorpusLoadSeconds    prometheus.Gauge
}

// New creates all collectors and registers them on a private registry
// together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordroots_lookups_total",
				Help: "Total lookups by kind (anchor, root) and outcome (hit, miss, invalid).",
			},
			[]string{"kind", "outcome"},
		),
		RootWordsReturned: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordroots_root_words_returned",
				Help:    "Number of distinct words returned per successful root lookup.",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
			},
		),
		CorpusGroups: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wordroots_corpus_entries",
				Help: "Entries produced by the last corpus load, by kind.",
			},
			[]string{"kind"},
		),
		CorpusLoadSeconds: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordroots_corpus_load_seconds",
				Help: "Duration of the last corpus parse in seconds.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.LookupsTotal,
		m.RootWordsReturned,
		m.CorpusGroups,
		m.CorpusLoadSeconds,
	)

	return m
}

// ObserveLookup records one lookup. words is the result size of a root hit.
func (m *Metrics) ObserveLookup(kind, outcome string, words int) {
	m.LookupsTotal.WithLabelValues(kind, outcome).Inc()
	if kind == KindRoot && outcome == OutcomeHit {
		m.RootWordsReturned.Observe(float64(words))
	}
}

// ObserveLoad publishes the statistics of a finished corpus load.
func (m *Metrics) ObserveLoad(stats corpus.Stats, seconds float64) {
	m.CorpusLoadSeconds.Set(seconds)
	m.CorpusGroups.WithLabelValues("groups").Set(float64(stats.Groups))
	m.CorpusGroups.WithLabelValues("skipped").Set(float64(stats.Skipped))
	m.CorpusGroups.WithLabelValues("anchors").Set(float64(stats.Anchors))
	m.CorpusGroups.WithLabelValues("collisions").Set(float64(stats.Collisions))
	m.CorpusGroups.WithLabelValues("roots").Set(float64(stats.Roots))
	m.CorpusGroups.WithLabelValues("derived").Set(float64(stats.Derived))
	m.CorpusGroups.WithLabelValues("contexts").Set(float64(stats.Contexts))
}

// Handler returns the Prometheus scrape HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
