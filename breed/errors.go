package breed

import (
	"errors"
	"fmt"
)

// ErrNotFound is the single failure kind of the Fetcher contract.
var ErrNotFound = errors.New("breed not found")

// NotFoundError reports that no sub-breed list is available for Breed.
// Err carries the underlying transport or parse failure when there is one.
type NotFoundError struct {
	Breed  string
	Reason string
	Err    error
}

// NotFound builds a *NotFoundError for breed.
func NotFound(breed, reason string, cause error) *NotFoundError {
	return &NotFoundError{Breed: breed, Reason: reason, Err: cause}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("breed %q not found", e.Breed)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err signals a missing result.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
