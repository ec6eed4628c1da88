// Package fetchercache provides a memoizing decorator for breed.Fetcher.
//
// # Overview
//
// CachingFetcher wraps any breed.Fetcher and remembers every successful
// lookup, so repeated questions about the same breed are answered without
// calling the wrapped fetcher again:
//
//	base, _ := dogapi.New()
//	cached := fetchercache.New(base)
//
//	subs, err := cached.GetSubBreeds(ctx, "Hound")   // calls dog.ceo
//	subs, err = cached.GetSubBreeds(ctx, " hound ")  // served from cache
//	fmt.Println(cached.CallsMade())                  // 1
//
// # Caching Behavior
//
//  1. Normalize the input (trim + lower-case) into the cache key
//  2. On a hit, return a copy of the stored list
//  3. On a miss, increment the call counter and call the wrapped fetcher
//     with the original input
//  4. Store a copy of the result only if the call succeeded
//  5. Return the result, or the wrapped fetcher's error unchanged
//
// Failures are never cached. A breed that failed once is fetched again on the
// next call, and that call counts as a new delegate invocation.
//
// # Call Accounting
//
// CallsMade equals the number of times the wrapped fetcher has been invoked
// since construction. Cache hits never change it.
//
// # Immutability
//
// Stored lists are private copies, and every call hands out a fresh copy.
// Mutating a returned slice never changes what later calls return.
//
// # Backends
//
// The default store is permanent and never evicts. A bounded sturdyc store can
// be supplied with WithCacheService(cache.NewCacheService[[]string](cfg)) when
// a memory ceiling matters more than permanence.
//
// # Concurrency
//
// CachingFetcher is safe for concurrent use. Concurrent misses for the same
// key result in a single call to the wrapped fetcher.
package fetchercache
