package cacheinfra

import (
	"context"

	"github.com/viccon/sturdyc"
)

// SturdycService is a bounded read-through store on top of sturdyc.
// sturdyc de-duplicates in-flight fetches for the same key and does not store
// a value when the fetch function fails.
type SturdycService[V any] struct {
	client *sturdyc.Client[V]
}

// NewSturdycService validates cfg and creates the sturdyc client.
func NewSturdycService[V any](cfg Config) (*SturdycService[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[V](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &SturdycService[V]{client: client}, nil
}

// GetOrFetch returns the cached value for key or fetches and stores it.
func (s *SturdycService[V]) GetOrFetch(ctx context.Context, key string, fetchFn func(context.Context) (V, error)) (V, error) {
	if fetchFn == nil {
		var zero V
		return zero, &ConfigError{Field: "fetchFn", Message: "cannot be nil"}
	}
	return s.client.GetOrFetch(ctx, key, fetchFn)
}

// Contains reports whether key currently has a live entry.
func (s *SturdycService[V]) Contains(key string) bool {
	_, ok := s.client.Get(key)
	return ok
}

// Len returns the number of live entries.
func (s *SturdycService[V]) Len() int {
	return s.client.Size()
}
