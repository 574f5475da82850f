// Package main implements the entry point for the flashcards API server,
// which turns user-submitted text into LLM-generated flashcard proposals
// and persists the accepted ones as named study sessions.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/SvenFlower/ai-flash-cards/internal/config"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}

// run loads configuration, wires the application, and serves until a
// shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(context.Background(), cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
