package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/SvenFlower/ai-flash-cards/internal/config"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/gemini"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/postgres"
	"github.com/SvenFlower/ai-flash-cards/internal/service"
	"github.com/SvenFlower/ai-flash-cards/internal/service/auth"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	tokenVerifier     auth.TokenVerifier
	generationService service.GenerationService
	sessionService    service.SessionService
	cardService       service.CardService
}

// newApplication connects to the database, runs migrations, and wires
// stores, the Gemini generator, and the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := postgres.ApplyMigrations(db, logger); err != nil {
		closeDatabase(db, logger)
		return nil, err
	}

	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)

	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	generationService, err := service.NewGenerationService(generator, cfg.Generation, logger)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	sessionService, err := service.NewSessionService(sessionStore, cardStore, logger)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	cardService, err := service.NewCardService(cardStore, sessionStore, logger)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	tokenVerifier, err := auth.NewTokenVerifier(cfg.Auth)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            logger,
		db:                db,
		tokenVerifier:     tokenVerifier,
		generationService: generationService,
		sessionService:    sessionService,
		cardService:       cardService,
	}, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
