// Package breed defines the sub-breed lookup capability shared by every fetch
// source and by the caching decorator.
//
// # Overview
//
// A Fetcher turns a breed name into the ordered list of its sub-breeds:
//
//	subs, err := fetcher.GetSubBreeds(ctx, "hound")
//	if breed.IsNotFound(err) {
//		// no result for this input
//	}
//
// Every failure, regardless of cause, is reported as a *NotFoundError that
// matches ErrNotFound through errors.Is. The original cause, when there is one,
// stays reachable through errors.Unwrap so callers can log it.
//
// # Implementations
//
//   - dogapi.Client: queries the dog.ceo HTTP API
//   - FetcherFunc: adapts a plain function, handy for tests and in-memory sources
//   - fetchercache.CachingFetcher: memoizes any other Fetcher
//
// # Key Normalization
//
// NormalizeKey trims surrounding whitespace and lower-cases the input. Two
// inputs with the same normalized key are treated as the same breed.
package breed
