package mocks

import (
	"context"

	"github.com/google/uuid"
)

// MockGenerator is a configurable mock implementation of generation.Generator.
type MockGenerator struct {
	// GenerateFn allows customizing the Generate behavior per test.
	GenerateFn func(ctx context.Context, text string, ownerID uuid.UUID) (string, error)

	// Calls records the source text of each Generate invocation.
	Calls []string
}

// Generate calls GenerateFn if set, otherwise returns an empty payload.
func (m *MockGenerator) Generate(ctx context.Context, text string, ownerID uuid.UUID) (string, error) {
	m.Calls = append(m.Calls, text)
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, text, ownerID)
	}
	return "", nil
}
