package cacheinfra

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/singleflight"
)

// MemoryService is a permanent read-through store. Entries are added on a
// successful fetch and never removed, updated, or expired.
type MemoryService[V any] struct {
	entries *xsync.MapOf[string, V]
	group   singleflight.Group
}

// NewMemoryService creates an empty MemoryService.
func NewMemoryService[V any]() *MemoryService[V] {
	return &MemoryService[V]{
		entries: xsync.NewMapOf[string, V](),
	}
}

// GetOrFetch returns the stored value for key. On a miss it calls fetchFn once,
// even when several goroutines miss on the same key at the same time, and
// stores the result only if fetchFn succeeded.
//
// The shared fetch runs under a context that keeps ctx's values but not its
// cancellation, so one waiter giving up does not fail the others. A waiter
// whose own ctx is done returns ctx.Err() without waiting for the fetch.
func (s *MemoryService[V]) GetOrFetch(ctx context.Context, key string, fetchFn func(context.Context) (V, error)) (V, error) {
	var zero V
	if fetchFn == nil {
		return zero, &ConfigError{Field: "fetchFn", Message: "cannot be nil"}
	}

	if v, ok := s.entries.Load(key); ok {
		return v, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		// A flight that finished between Load and DoChan may already have stored key.
		if v, ok := s.entries.Load(key); ok {
			return v, nil
		}

		v, err := fetchFn(flightCtx)
		if err != nil {
			return nil, err
		}

		s.entries.Store(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	}
}

// Contains reports whether key has been stored.
func (s *MemoryService[V]) Contains(key string) bool {
	_, ok := s.entries.Load(key)
	return ok
}

// Len returns the number of stored entries.
func (s *MemoryService[V]) Len() int {
	return s.entries.Size()
}
