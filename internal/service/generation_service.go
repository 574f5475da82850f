// Package service implements the application's use cases on top of the
// domain model, the staging arena, and the persistence stores. Services
// validate input, orchestrate the generation pipeline and the two-step
// session commit, and translate lower-level failures into the error
// vocabulary the API layer maps to responses.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/SvenFlower/ai-flash-cards/internal/config"
	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/generation"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/staging"
	"github.com/google/uuid"
)

// GenerationService runs the generation pipeline: source text validation,
// the provider call, response parsing, and staging of the resulting
// candidates.
type GenerationService interface {
	// GenerateBatch validates the source text, calls the provider, and
	// returns a fresh batch of pending candidates for the owner. The
	// returned batch replaces any earlier one the caller may hold.
	GenerateBatch(ctx context.Context, ownerID uuid.UUID, text string) (*staging.Batch, error)
}

type generationService struct {
	generator generation.Generator
	cfg       config.GenerationConfig
	logger    *slog.Logger
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(generator generation.Generator, cfg config.GenerationConfig, log *slog.Logger) (GenerationService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &generationService{
		generator: generator,
		cfg:       cfg,
		logger:    log.With(slog.String("component", "generation_service")),
	}, nil
}

func (s *generationService) GenerateBatch(ctx context.Context, ownerID uuid.UUID, text string) (*staging.Batch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Source text is validated before any provider work so invalid input
	// never spends an upstream call.
	if err := s.validateSourceText(text); err != nil {
		return nil, err
	}

	payload, err := s.generator.Generate(ctx, text, ownerID)
	if err != nil {
		return nil, err
	}

	contents, err := generation.ParseCandidates(payload)
	if err != nil {
		return nil, err
	}

	if len(contents) > s.cfg.MaxCards {
		log.Info("truncating candidate set",
			slog.Int("parsed_count", len(contents)),
			slog.Int("max_cards", s.cfg.MaxCards))
		contents = contents[:s.cfg.MaxCards]
	}

	batch := staging.NewBatch(ownerID, contents)
	log.Debug("staged generation batch",
		slog.String("owner_id", ownerID.String()),
		slog.Int("candidate_count", batch.Len()))
	return batch, nil
}

// validateSourceText enforces the configured length bounds. Length is
// counted in runes, and the minimum is checked against the trimmed text
// so padding-only submissions are rejected.
func (s *generationService) validateSourceText(text string) error {
	if utf8.RuneCountInString(text) > s.cfg.MaxTextLength {
		return domain.NewValidationError("text", domain.CodeTextTooLong,
			fmt.Sprintf("source text must be at most %d characters", s.cfg.MaxTextLength))
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < s.cfg.MinTextLength {
		return domain.NewValidationError("text", domain.CodeTextTooShort,
			fmt.Sprintf("source text must be at least %d characters", s.cfg.MinTextLength))
	}
	return nil
}
