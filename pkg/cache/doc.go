// Package cache provides an optional redis-backed response cache for
// entity lookups (user profiles, tags, articles, popular tags).
//
// The Drukarnia API sends no cache-control headers, so expiry is purely
// TTL-based: each request type that opts into caching declares how long
// its responses stay valid, and redis evicts entries on its own.
//
// Paginated page requests are never cached. Search results move under
// the reader's feet, and the pagination streams rely on every page fetch
// observing the live ordering.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	store := cache.NewStore(redisClient)
//
//	entry, err := store.Get(ctx, url)
//	if err == cache.ErrCacheMiss {
//		// fetch from the API, then store.Set(ctx, url, entry, ttl)
//	}
//
// # Metrics
//
// The store exports Prometheus metrics:
//
//   - drukarnia_cache_hits_total - responses served from cache
//   - drukarnia_cache_misses_total - lookups that went to the network
//   - drukarnia_cache_errors_total{operation} - failed cache operations
package cache
