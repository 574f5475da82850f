// Package auth verifies bearer tokens issued by the external identity
// provider. This service never issues or refreshes credentials itself;
// it only establishes which owner a request acts as.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenVerifier defines the operation for authenticating requests.
type TokenVerifier interface {
	// VerifyToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken, ErrTokenNotYetValid, or
	// ErrInvalidToken when validation fails.
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the verified identity of the caller.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
