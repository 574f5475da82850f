package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SvenFlower/ai-flash-cards/internal/api"
	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/generation"
	"github.com/SvenFlower/ai-flash-cards/internal/service"
	"github.com/SvenFlower/ai-flash-cards/internal/service/auth"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation error", err: domain.NewValidationError("text", domain.CodeTextTooShort, "too short"), want: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "missing token", err: auth.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "session not found", err: store.ErrSessionNotFound, want: http.StatusNotFound},
		{name: "card not found", err: store.ErrCardNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("getting session: %w", store.ErrSessionNotFound), want: http.StatusNotFound},
		{name: "upstream timeout", err: generation.ErrUpstreamTimeout, want: http.StatusGatewayTimeout},
		{name: "upstream service error", err: &generation.UpstreamServiceError{Status: 500}, want: http.StatusBadGateway},
		{name: "upstream unavailable", err: generation.ErrUpstreamUnavailable, want: http.StatusServiceUnavailable},
		{name: "response parse error", err: generation.ErrResponseParse, want: http.StatusBadGateway},
		{name: "empty candidate set", err: generation.ErrEmptyCandidateSet, want: http.StatusUnprocessableEntity},
		{name: "persistence error", err: service.ErrPersistence, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "validation error", err: domain.NewValidationError("text", domain.CodeTextTooLong, "too long"), want: api.CodeValidationError},
		{name: "expired token", err: auth.ErrExpiredToken, want: api.CodeAuthRequired},
		{name: "session not found", err: store.ErrSessionNotFound, want: api.CodeNotFound},
		{name: "upstream timeout", err: generation.ErrUpstreamTimeout, want: api.CodeUpstreamTimeout},
		{name: "upstream service error", err: &generation.UpstreamServiceError{Status: 503}, want: api.CodeUpstreamServiceError},
		{name: "upstream unavailable", err: generation.ErrUpstreamUnavailable, want: api.CodeUpstreamUnavailable},
		{name: "response parse error", err: generation.ErrResponseParse, want: api.CodeResponseParseError},
		{name: "empty candidate set", err: generation.ErrEmptyCandidateSet, want: api.CodeEmptyCandidateSet},
		{name: "persistence error", err: service.ErrPersistence, want: api.CodePersistenceError},
		{name: "unknown error", err: errors.New("boom"), want: api.CodeInternalError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverEchoesInternals(t *testing.T) {
	t.Parallel()

	// The upstream status code must not leak into the client message.
	msg := api.GetSafeErrorMessage(&generation.UpstreamServiceError{Status: 500})
	assert.NotContains(t, msg, "500")
	assert.NotContains(t, msg, "status")

	// Raw error text never surfaces for unknown errors.
	msg = api.GetSafeErrorMessage(errors.New("pq: connection to host 10.0.0.5 failed"))
	assert.Equal(t, "An unexpected error occurred", msg)
}
