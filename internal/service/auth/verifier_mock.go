package auth

import "context"

// MockTokenVerifier is a configurable mock implementation of TokenVerifier
// for tests.
type MockTokenVerifier struct {
	VerifyTokenFn func(ctx context.Context, tokenString string) (*Claims, error)
}

var _ TokenVerifier = (*MockTokenVerifier)(nil)

// VerifyToken calls VerifyTokenFn if set, otherwise rejects the token.
func (m *MockTokenVerifier) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, tokenString)
	}
	return nil, ErrInvalidToken
}
