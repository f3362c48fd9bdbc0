package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trip planner domain.
var (
	// ErrInvalidParams indicates search parameters failed validation.
	ErrInvalidParams = errors.New("invalid search parameters")

	// ErrInvalidItemType indicates an unknown itinerary item type.
	ErrInvalidItemType = errors.New("invalid item type")

	// ErrItemNotFound indicates a referenced itinerary item does not exist.
	ErrItemNotFound = errors.New("itinerary item not found")

	// ErrProviderTimeout indicates a provider did not respond in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates a provider returned a server error
	// or could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrSnapshotCorrupt indicates a persisted itinerary snapshot could not
	// be decoded. Readers treat this as an absent snapshot.
	ErrSnapshotCorrupt = errors.New("itinerary snapshot corrupt")
)

// ProviderError wraps an error from a specific search provider.
// Retryable marks transient failures worth another attempt.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the operation may succeed on retry
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a retryable provider error.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable timeout error for a provider.
func NewProviderTimeoutError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderTimeout, Retryable: true}
}

// NewProviderUnavailableError creates a retryable unavailability error for a provider.
func NewProviderUnavailableError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderUnavailable, Retryable: true}
}

// IsInvalidParams checks whether err is a parameter validation failure.
func IsInvalidParams(err error) bool {
	return errors.Is(err, ErrInvalidParams)
}
