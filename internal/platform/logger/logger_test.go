package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/SvenFlower/ai-flash-cards/internal/config"
)

func TestSetupValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
		logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		if err != nil {
			t.Fatalf("Setup(%q) returned error: %v", level, err)
		}
		if logger == nil {
			t.Fatalf("Setup(%q) returned nil logger", level)
		}
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	if err != nil {
		t.Fatalf("expected no error for invalid level, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger despite invalid level")
	}
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Empty context falls back to the provided default.
	if got := FromContextOrDefault(context.Background(), def); got != def {
		t.Error("expected default logger for empty context")
	}

	// Stored logger wins.
	stored := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), stored)
	if got := FromContextOrDefault(ctx, def); got != stored {
		t.Error("expected stored logger from context")
	}

	// Nil default falls back to slog.Default.
	if got := FromContextOrDefault(context.Background(), nil); got == nil {
		t.Error("expected non-nil logger for nil default")
	}
}
