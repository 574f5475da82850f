package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrUpstreamTimeout is returned when the provider call exceeds its deadline.
	ErrUpstreamTimeout = errors.New("upstream provider call timed out")

	// ErrUpstreamService is returned when the provider responds with a
	// non-success status. The status is carried by UpstreamServiceError
	// for logging only and is never echoed to callers.
	ErrUpstreamService = errors.New("upstream provider returned an error")

	// ErrUpstreamUnavailable is returned for network-level failures
	// reaching the provider.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	// ErrResponseParse is returned when the provider payload cannot be
	// parsed as the expected JSON structure.
	ErrResponseParse = errors.New("invalid response from language model")

	// ErrEmptyCandidateSet is returned when the provider payload yields
	// no valid candidates after validation.
	ErrEmptyCandidateSet = errors.New("no valid candidates in response")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// UpstreamServiceError wraps ErrUpstreamService with the upstream status
// code so platform logs can record it.
type UpstreamServiceError struct {
	Status int
}

// Error implements the error interface. The status is included because
// this text only reaches server-side logs, never API responses.
func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("upstream provider returned an error: status %d", e.Status)
}

// Unwrap makes errors.Is(err, ErrUpstreamService) succeed.
func (e *UpstreamServiceError) Unwrap() error {
	return ErrUpstreamService
}
