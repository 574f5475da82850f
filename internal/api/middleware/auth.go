package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SvenFlower/ai-flash-cards/internal/api/shared"
	"github.com/SvenFlower/ai-flash-cards/internal/service/auth"
	"github.com/google/uuid"
)

// authRequiredCode mirrors the machine code the api package uses for
// authentication failures; defined here to keep the dependency pointing
// one way.
const authRequiredCode = "AUTH_REQUIRED"

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given verifier.
func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate validates the bearer token from the Authorization header
// and adds the caller's user ID to the request context. Every failure
// mode answers 401 with the same machine code.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, authRequiredCode, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, authRequiredCode, "Invalid authorization format")
			return
		}

		claims, err := m.verifier.VerifyToken(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, authRequiredCode, "Token expired")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, authRequiredCode, "Invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
