// Package cache provides the read-through cache contracts used by the caching fetcher.
//
// # Overview
//
// This package exports two interfaces and their default implementations:
//
//   - CacheService: a generic read-through store keyed by string
//   - KeySerializer: maps a raw breed input to its cache key
//
// # Backends
//
// Two backends are available:
//
//	permanent := cache.NewMemoryService[[]string]()
//	bounded, err := cache.NewCacheService[[]string](cache.DefaultConfig())
//
// The memory service keeps every successful result for the lifetime of the
// process. It is the default used by fetchercache and the one whose behavior
// matches the "never evicted" contract.
//
// The bounded service is backed by sturdyc. It trades the permanence guarantee
// for a memory ceiling: entries expire after TTL and are evicted once Capacity
// is reached. Missing-record storage and early refreshes are never enabled, so
// failures are not remembered and fetch functions are only called on a miss.
//
// # Failure Handling
//
// Neither backend stores a failed fetch. The error returned by the fetch
// function is handed back to the caller unchanged, and the next lookup for the
// same key fetches again.
//
// # Concurrency
//
// Both backends are safe for concurrent use and collapse concurrent misses for
// the same key into a single fetch.
//
// # Key Serialization
//
// The default key serializer trims surrounding whitespace and lower-cases the
// input, so "Labrador", " labrador " and "LABRADOR" share an entry.
package cache
