package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// LookupsTotal counts click lookups processed by the pipeline.
	LookupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "timemap",
			Name:      "lookups_total",
			Help:      "Total number of coordinate lookups processed",
		},
	)

	// LookupErrors counts lookups that ended in a user-visible error, by reason.
	LookupErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "timemap",
			Name:      "lookup_errors_total",
			Help:      "Total number of lookups that produced an error record",
		},
		[]string{"reason"},
	)

	// LookupDuration observes end-to-end pipeline latency.
	LookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "timemap",
			Name:      "lookup_duration_seconds",
			Help:      "End-to-end lookup pipeline duration",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// EnrichmentRequests counts calls to the statistics service by HTTP status.
	EnrichmentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "timemap",
			Name:      "enrichment_requests_total",
			Help:      "Total requests sent to the statistics service",
		},
		[]string{"status"},
	)

	// EnrichmentFailures counts degraded enrichment calls by kind.
	EnrichmentFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "timemap",
			Name:      "enrichment_failures_total",
			Help:      "Total enrichment calls that fell back to a degraded value",
		},
		[]string{"kind"},
	)

	// StalePublishesDropped counts records rejected by the sequence guard.
	StalePublishesDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "timemap",
			Name:      "stale_publishes_dropped_total",
			Help:      "Records dropped because a newer click was already published",
		},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(LookupsTotal)
		prometheus.DefaultRegisterer.Register(LookupErrors)
		prometheus.DefaultRegisterer.Register(LookupDuration)
		prometheus.DefaultRegisterer.Register(EnrichmentRequests)
		prometheus.DefaultRegisterer.Register(EnrichmentFailures)
		prometheus.DefaultRegisterer.Register(StalePublishesDropped)
	})
}
