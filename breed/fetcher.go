package breed

import (
	"context"
	"strings"
)

// Fetcher returns the sub-breeds of a breed, in the order the source lists them.
// Implementations report every failure as a *NotFoundError.
type Fetcher interface {
	GetSubBreeds(ctx context.Context, breed string) ([]string, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, breed string) ([]string, error)

// GetSubBreeds calls f(ctx, breed).
func (f FetcherFunc) GetSubBreeds(ctx context.Context, breed string) ([]string, error) {
	return f(ctx, breed)
}

// NormalizeKey trims surrounding whitespace and lower-cases breed.
func NormalizeKey(breed string) string {
	return strings.ToLower(strings.TrimSpace(breed))
}
