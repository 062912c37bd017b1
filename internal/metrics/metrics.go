// Package metrics exposes scoreline's Prometheus collectors on a dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Favorites mutation results.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
	ResultFailed    = "failed"
)

// Manager owns every collector. A nil *Manager is valid and records nothing,
// so packages can be used without metrics in tests.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec

	favoritesMutations *prometheus.CounterVec
	favoritesCount     prometheus.Gauge

	catalogReloads    *prometheus.CounterVec
	catalogLastReload prometheus.Gauge
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(m *Manager) {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

func New(opts ...Option) *Manager {
	m := &Manager{
		namespace: "scoreline",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route pattern, method and status code",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	m.upstreamRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "upstream_requests_total",
		Help:      "Calls to third-party providers, by provider and outcome",
	}, []string{"provider", "outcome"})

	m.upstreamDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "upstream_duration_seconds",
		Help:      "Latency of calls to third-party providers",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})

	m.favoritesMutations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "favorites_mutations_total",
		Help:      "Favorites add/remove operations, by operation and result",
	}, []string{"op", "result"})

	m.favoritesCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "favorites_count",
		Help:      "Number of entries in the persisted favorites collection after the last write",
	})

	m.catalogReloads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "catalog_reloads_total",
		Help:      "Catalog reloads, by result",
	}, []string{"result"})

	m.catalogLastReload = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "catalog_last_reload_timestamp_seconds",
		Help:      "Unix time of the last successful catalog reload",
	})
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})
}

func (m *Manager) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Manager) RecordUpstream(provider, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(provider, outcome).Inc()
	m.upstreamDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func (m *Manager) RecordFavoritesMutation(op, result string) {
	if m == nil {
		return
	}
	m.favoritesMutations.WithLabelValues(op, result).Inc()
}

func (m *Manager) SetFavoritesCount(n int) {
	if m == nil {
		return
	}
	m.favoritesCount.Set(float64(n))
}

func (m *Manager) RecordCatalogReload(ok bool, at time.Time) {
	if m == nil {
		return
	}
	if !ok {
		m.catalogReloads.WithLabelValues(ResultFailed).Inc()
		return
	}
	m.catalogReloads.WithLabelValues(OutcomeOK).Inc()
	m.catalogLastReload.Set(float64(at.Unix()))
}
