package api

import (
	"errors"
	"net/http"

	"github.com/SvenFlower/ai-flash-cards/internal/api/shared"
	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/generation"
	"github.com/SvenFlower/ai-flash-cards/internal/service"
	"github.com/SvenFlower/ai-flash-cards/internal/service/auth"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
)

// Machine-readable error codes carried in error responses.
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeAuthRequired         = "AUTH_REQUIRED"
	CodeUpstreamTimeout      = "UPSTREAM_TIMEOUT"
	CodeUpstreamServiceError = "UPSTREAM_SERVICE_ERROR"
	CodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeResponseParseError   = "RESPONSE_PARSE_ERROR"
	CodeEmptyCandidateSet    = "EMPTY_CANDIDATE_SET"
	CodeNotFound             = "NOT_FOUND"
	CodePersistenceError     = "PERSISTENCE_ERROR"
	CodeInternalError        = "INTERNAL_ERROR"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based
// on the error type. This keeps internal error types and messages from
// leaking to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Cross-owner access reads as missing, never as forbidden.
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, generation.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout

	case errors.Is(err, generation.ErrUpstreamService),
		errors.Is(err, generation.ErrResponseParse):
		return http.StatusBadGateway

	case errors.Is(err, generation.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrEmptyCandidateSet):
		return http.StatusUnprocessableEntity

	case errors.Is(err, service.ErrPersistence):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToCode maps internal errors to the machine-readable codes of
// the error envelope.
func MapErrorToCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return CodeValidationError

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return CodeAuthRequired

	case errors.Is(err, store.ErrNotFound):
		return CodeNotFound

	case errors.Is(err, generation.ErrUpstreamTimeout):
		return CodeUpstreamTimeout

	case errors.Is(err, generation.ErrUpstreamService):
		return CodeUpstreamServiceError

	case errors.Is(err, generation.ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable

	case errors.Is(err, generation.ErrResponseParse):
		return CodeResponseParseError

	case errors.Is(err, generation.ErrEmptyCandidateSet):
		return CodeEmptyCandidateSet

	case errors.Is(err, service.ErrPersistence):
		return CodePersistenceError

	default:
		return CodeInternalError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Upstream status codes, SQL text, and other
// internals are never included.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Flashcard not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, generation.ErrUpstreamTimeout):
		return "Flashcard generation timed out"

	case errors.Is(err, generation.ErrUpstreamService),
		errors.Is(err, generation.ErrUpstreamUnavailable):
		return "Flashcard generation is currently unavailable"

	case errors.Is(err, generation.ErrResponseParse):
		return "Flashcard generation returned an unusable response"

	case errors.Is(err, generation.ErrEmptyCandidateSet):
		return "No flashcards could be generated from this text"

	case errors.Is(err, service.ErrPersistence):
		return "Failed to save changes"

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError translates err through the taxonomy above and
// writes the response. Validation errors additionally carry their
// per-field violation codes.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		shared.RespondWithFieldErrors(w, r, CodeValidationError, GetSafeErrorMessage(err), validationErr.Fields())
		return
	}

	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, MapErrorToCode(err), GetSafeErrorMessage(err), err)
}
