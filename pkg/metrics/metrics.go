// Package metrics provides the centralized Prometheus registry reference
// for the Drukarnia client. Metrics are defined in their respective
// packages (executor, cache) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/executor):
//   - drukarnia_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - drukarnia_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - drukarnia_errors_total{class} (Counter): Errors by class (network, decode, unsupported_method)
//
// Cache Metrics (pkg/cache):
//   - drukarnia_cache_hits_total (Counter): Responses served from cache
//   - drukarnia_cache_misses_total (Counter): Lookups that went to the network
//   - drukarnia_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(drukarnia_cache_hits_total[5m])) /
//   (sum(rate(drukarnia_cache_hits_total[5m])) + sum(rate(drukarnia_cache_misses_total[5m])))
//
//   # Request Error Rate
//   rate(drukarnia_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(drukarnia_request_duration_seconds_bucket[5m]))
