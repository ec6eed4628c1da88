package cache

import (
	"time"

	"github.com/goliatone/go-breed-cache/internal/cacheinfra"
)

// Config exposes the bounded cache options for consumers of the cache package.
type Config struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewCacheService constructs the bounded, sturdyc backed cache service.
// Entries in this store are evicted once Capacity is reached and expire after TTL.
func NewCacheService[V any](cfg Config) (CacheService[V], error) {
	svc, err := cacheinfra.NewSturdycService[V](cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// NewMemoryService constructs the permanent in-memory cache service.
// Entries live for the lifetime of the process and are never evicted.
func NewMemoryService[V any]() CacheService[V] {
	return cacheinfra.NewMemoryService[V]()
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
