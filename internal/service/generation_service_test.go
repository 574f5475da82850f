package service_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SvenFlower/ai-flash-cards/internal/config"
	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/generation"
	"github.com/SvenFlower/ai-flash-cards/internal/mocks"
	"github.com/SvenFlower/ai-flash-cards/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGenerationConfig() config.GenerationConfig {
	return config.GenerationConfig{
		MinTextLength: 100,
		MaxTextLength: 10000,
		MaxCards:      50,
	}
}

func newGenerationService(t *testing.T, generator *mocks.MockGenerator, cfg config.GenerationConfig) service.GenerationService {
	t.Helper()
	svc, err := service.NewGenerationService(generator, cfg, testLogger())
	require.NoError(t, err)
	return svc
}

func TestNewGenerationService_NilDependencies(t *testing.T) {
	t.Parallel()

	_, err := service.NewGenerationService(nil, testGenerationConfig(), testLogger())
	assert.Error(t, err)

	_, err = service.NewGenerationService(&mocks.MockGenerator{}, testGenerationConfig(), nil)
	assert.Error(t, err)
}

func TestGenerateBatch_TextTooShort(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{}
	svc := newGenerationService(t, generator, testGenerationConfig())

	_, err := svc.GenerateBatch(context.Background(), uuid.New(), strings.Repeat("a", 50))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, validationErr.Fields()["text"], domain.CodeTextTooShort)

	// Invalid input never reaches the provider.
	assert.Empty(t, generator.Calls)
}

func TestGenerateBatch_PaddingOnlyTextTooShort(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{}
	svc := newGenerationService(t, generator, testGenerationConfig())

	// Whitespace padding lifts the raw length past the minimum but the
	// trimmed text stays below it.
	text := strings.Repeat(" ", 120) + strings.Repeat("a", 10)
	_, err := svc.GenerateBatch(context.Background(), uuid.New(), text)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields()["text"], domain.CodeTextTooShort)
	assert.Empty(t, generator.Calls)
}

func TestGenerateBatch_TextTooLong(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{}
	svc := newGenerationService(t, generator, testGenerationConfig())

	_, err := svc.GenerateBatch(context.Background(), uuid.New(), strings.Repeat("a", 10001))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields()["text"], domain.CodeTextTooLong)
	assert.Empty(t, generator.Calls)
}

func TestGenerateBatch_StagesPendingCandidates(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, text string, ownerID uuid.UUID) (string, error) {
			return `{"flashcards": [
				{"front": "What is Go?", "back": "A programming language."},
				{"front": "What is a goroutine?", "back": "A lightweight thread."}
			]}`, nil
		},
	}
	svc := newGenerationService(t, generator, testGenerationConfig())
	ownerID := uuid.New()

	batch, err := svc.GenerateBatch(context.Background(), ownerID, strings.Repeat("a", 150))
	require.NoError(t, err)

	assert.Equal(t, ownerID, batch.OwnerID())
	require.Equal(t, 2, batch.Len())
	candidates := batch.Candidates()
	assert.Equal(t, "What is Go?", candidates[0].Front)
	assert.Equal(t, "What is a goroutine?", candidates[1].Front)
	for _, candidate := range candidates {
		assert.Equal(t, domain.CandidateStatusPending, candidate.Status)
	}
}

func TestGenerateBatch_TruncatesToMaxCards(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, text string, ownerID uuid.UUID) (string, error) {
			return `{"flashcards": [
				{"front": "q1", "back": "a1"},
				{"front": "q2", "back": "a2"},
				{"front": "q3", "back": "a3"}
			]}`, nil
		},
	}
	cfg := testGenerationConfig()
	cfg.MaxCards = 2
	svc := newGenerationService(t, generator, cfg)

	batch, err := svc.GenerateBatch(context.Background(), uuid.New(), strings.Repeat("a", 150))
	require.NoError(t, err)

	require.Equal(t, 2, batch.Len())
	assert.Equal(t, "q1", batch.Candidates()[0].Front)
	assert.Equal(t, "q2", batch.Candidates()[1].Front)
}

func TestGenerateBatch_UpstreamErrorsPassThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "timeout", err: generation.ErrUpstreamTimeout},
		{name: "service error", err: &generation.UpstreamServiceError{Status: 500}},
		{name: "unavailable", err: generation.ErrUpstreamUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			generator := &mocks.MockGenerator{
				GenerateFn: func(ctx context.Context, text string, ownerID uuid.UUID) (string, error) {
					return "", tc.err
				},
			}
			svc := newGenerationService(t, generator, testGenerationConfig())

			_, err := svc.GenerateBatch(context.Background(), uuid.New(), strings.Repeat("a", 150))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGenerateBatch_UnparsablePayload(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, text string, ownerID uuid.UUID) (string, error) {
			return "this is not json", nil
		},
	}
	svc := newGenerationService(t, generator, testGenerationConfig())

	_, err := svc.GenerateBatch(context.Background(), uuid.New(), strings.Repeat("a", 150))
	assert.ErrorIs(t, err, generation.ErrResponseParse)
}

func TestGenerateBatch_EmptyCandidateSet(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, text string, ownerID uuid.UUID) (string, error) {
			return `{"flashcards": []}`, nil
		},
	}
	svc := newGenerationService(t, generator, testGenerationConfig())

	_, err := svc.GenerateBatch(context.Background(), uuid.New(), strings.Repeat("a", 150))
	assert.ErrorIs(t, err, generation.ErrEmptyCandidateSet)
}
