package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for cache operations.
var (
	// CacheHits counts responses served from cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drukarnia_cache_hits_total",
		Help: "Total cache hits",
	})

	// CacheMisses counts lookups that went to the network.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drukarnia_cache_misses_total",
		Help: "Total cache misses",
	})

	// CacheErrors counts failed cache operations by operation name.
	CacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drukarnia_cache_errors_total",
		Help: "Total cache operation errors",
	}, []string{"operation"})
)
