package fetchercache

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/apex/log"

	"github.com/goliatone/go-breed-cache/breed"
	"github.com/goliatone/go-breed-cache/cache"
)

// Interface assertion to ensure CachingFetcher implements breed.Fetcher
var _ breed.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher decorates a base fetcher with memoization of successful lookups
type CachingFetcher struct {
	base          breed.Fetcher
	cache         cache.CacheService[[]string]
	keySerializer cache.KeySerializer
	logger        log.Interface
	callsMade     atomic.Int64
}

// Option configures a CachingFetcher.
type Option func(*CachingFetcher)

// WithCacheService replaces the default permanent in-memory store.
func WithCacheService(svc cache.CacheService[[]string]) Option {
	return func(c *CachingFetcher) {
		if svc != nil {
			c.cache = svc
		}
	}
}

// WithKeySerializer replaces the default trim + lower-case key strategy.
func WithKeySerializer(ks cache.KeySerializer) Option {
	return func(c *CachingFetcher) {
		if ks != nil {
			c.keySerializer = ks
		}
	}
}

// WithLogger sets the logger used for hit/miss diagnostics.
func WithLogger(logger log.Interface) Option {
	return func(c *CachingFetcher) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new CachingFetcher that wraps base.
func New(base breed.Fetcher, opts ...Option) *CachingFetcher {
	c := &CachingFetcher{
		base:          base,
		cache:         cache.NewMemoryService[[]string](),
		keySerializer: cache.NewDefaultKeySerializer(),
		logger:        log.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSubBreeds returns the sub-breeds of b, calling the base fetcher only when
// no successful result is cached under the normalized key. The base fetcher
// always receives the original, unnormalized input. Failures are returned
// unchanged and leave nothing in the cache.
//
// The returned slice belongs to the caller.
func (c *CachingFetcher) GetSubBreeds(ctx context.Context, b string) ([]string, error) {
	key := c.keySerializer.SerializeKey(b)
	logger := c.logger.WithField("key", key)

	var missed atomic.Bool
	subs, err := c.cache.GetOrFetch(ctx, key, func(ctx context.Context) ([]string, error) {
		missed.Store(true)
		calls := c.callsMade.Add(1)
		logger.WithField("calls", calls).Debug("cache miss, calling base fetcher")

		result, err := c.base.GetSubBreeds(ctx, b)
		if err != nil {
			return nil, err
		}
		return freeze(result), nil
	})
	if err != nil {
		logger.WithError(err).Warn("sub-breed lookup failed")
		return nil, err
	}

	// Covers both a stored hit and a result shared from another caller's flight.
	if !missed.Load() {
		logger.Debug("served without calling base fetcher")
	}
	return slices.Clone(subs), nil
}

// CallsMade returns the number of times the base fetcher has been called.
// It only increases on a cache miss, whether that miss succeeded or failed.
func (c *CachingFetcher) CallsMade() int64 {
	return c.callsMade.Load()
}

// Cached reports whether a successful result for b is stored.
// It never calls the base fetcher.
func (c *CachingFetcher) Cached(b string) bool {
	return c.cache.Contains(c.keySerializer.SerializeKey(b))
}

// Len returns the number of cached breeds.
func (c *CachingFetcher) Len() int {
	return c.cache.Len()
}

// freeze copies subs so the stored value cannot be reached through the
// caller's slice. A nil result is stored as an empty list.
func freeze(subs []string) []string {
	if subs == nil {
		return []string{}
	}
	return slices.Clip(slices.Clone(subs))
}
