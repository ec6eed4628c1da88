package cache

import "context"

// KeySerializer maps a raw breed input to the key its result is cached under.
// Inputs that must share a cache entry must produce the same key.
type KeySerializer interface {
	SerializeKey(breed string) string
}

// FetchFn is the function signature CacheService expects when fetching from the source of truth.
type FetchFn[V any] func(ctx context.Context) (V, error)

// CacheService exposes the read-through operations the caching fetcher needs.
//
// GetOrFetch returns the value stored under key, or calls fetchFn and stores
// its result when fetchFn succeeds. Failed fetches are never stored and their
// error is returned unchanged.
type CacheService[V any] interface {
	GetOrFetch(ctx context.Context, key string, fetchFn func(context.Context) (V, error)) (V, error)
	Contains(key string) bool
	Len() int
}

// GetOrFetch is a convenience wrapper that accepts a named FetchFn.
func GetOrFetch[V any](ctx context.Context, service CacheService[V], key string, fetchFn FetchFn[V]) (V, error) {
	return service.GetOrFetch(ctx, key, fetchFn)
}
