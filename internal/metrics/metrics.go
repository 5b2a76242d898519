// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

var (
	// CacheRequestsTotal counts read-through cache lookups by cache and result (hit, miss)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Total number of read-through cache lookups",
		},
		[]string{"cache", "result"},
	)

	// PageQueriesTotal counts paginated listings by strategy (single, two_phase)
	PageQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_page_queries_total",
			Help: "Total number of paginated article listings by query strategy",
		},
		[]string{"strategy"},
	)
)

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	s := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, s).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, s).Observe(duration.Seconds())
}

func RecordCacheHit(cache string) {
	CacheRequestsTotal.WithLabelValues(cache, "hit").Inc()
}

func RecordCacheMiss(cache string) {
	CacheRequestsTotal.WithLabelValues(cache, "miss").Inc()
}

func RecordPageQuery(twoPhase bool) {
	strategy := "single"
	if twoPhase {
		strategy = "two_phase"
	}
	PageQueriesTotal.WithLabelValues(strategy).Inc()
}
