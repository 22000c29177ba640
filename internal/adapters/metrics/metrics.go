// Package metrics records resolver cache activity as Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	namespace         = "ghwu"
	resolverSubsystem = "resolver"

	// CacheHit is the status label value for lookups served from the cache.
	CacheHit = "hit"
	// CacheMiss is the status label value for lookups that started a fetch.
	CacheMiss = "miss"
	// CacheCoalesced is the status label value for lookups that joined a fetch in flight.
	CacheCoalesced = "coalesced"
)

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implements ports.Metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	// Cache defines the counter ghwu_resolver_cache_total.
	Cache *prometheus.CounterVec
	// FetchErrors defines the counter ghwu_resolver_fetch_errors_total.
	FetchErrors *prometheus.CounterVec
	// UnknownSchemes defines the counter ghwu_resolver_unknown_scheme_total.
	UnknownSchemes prometheus.Counter
}

// NewRecorder creates a Recorder with all counters registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Cache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: resolverSubsystem,
				Name:      "cache_total",
				Help:      "Total number of version lookups by cache status.",
			},
			[]string{"scheme", "status"},
		),
		FetchErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: resolverSubsystem,
				Name:      "fetch_errors_total",
				Help:      "Total number of failed upstream version fetches.",
			},
			[]string{"scheme"},
		),
		UnknownSchemes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: resolverSubsystem,
				Name:      "unknown_scheme_total",
				Help:      "Total number of lookups for resources no updater handles.",
			},
		),
	}
}

// Registry returns the registry holding the counters.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// CacheHit implements ports.Metrics.
func (r *Recorder) CacheHit(scheme domain.Scheme) {
	r.Cache.WithLabelValues(string(scheme), CacheHit).Inc()
}

// CacheMiss implements ports.Metrics.
func (r *Recorder) CacheMiss(scheme domain.Scheme) {
	r.Cache.WithLabelValues(string(scheme), CacheMiss).Inc()
}

// Coalesced implements ports.Metrics.
func (r *Recorder) Coalesced(scheme domain.Scheme) {
	r.Cache.WithLabelValues(string(scheme), CacheCoalesced).Inc()
}

// FetchFailed implements ports.Metrics.
func (r *Recorder) FetchFailed(scheme domain.Scheme) {
	r.FetchErrors.WithLabelValues(string(scheme)).Inc()
}

// UnknownScheme implements ports.Metrics.
func (r *Recorder) UnknownScheme() {
	r.UnknownSchemes.Inc()
}

// WriteTextfile writes the counters to path in the text exposition format,
// as read by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	return nil
}
