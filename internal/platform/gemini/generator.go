package gemini

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/template"
	"time"

	"github.com/SvenFlower/ai-flash-cards/internal/config"
	"github.com/SvenFlower/ai-flash-cards/internal/generation"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/redact"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// systemInstruction is the fixed instruction sent with every request.
// It pins the reply to the JSON shape the response parser expects.
const systemInstruction = `You generate study flashcards. Respond with a single JSON object of the form
{"flashcards": [{"front": "...", "back": "..."}, ...]} and nothing else.
Both front and back must be non-empty strings.`

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API. It makes exactly one bounded-deadline call per
// Generate invocation; retry policy belongs to an outer layer.
type GeminiGenerator struct {
	logger         *slog.Logger
	promptTemplate *template.Template
	client         *genai.Client
	model          string
	timeout        time.Duration
}

// NewGeminiGenerator creates a new GeminiGenerator from the LLM
// configuration. The prompt template defaults to the embedded one and
// can be overridden with config.PromptTemplatePath.
func NewGeminiGenerator(
	ctx context.Context,
	log *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	templateContent := defaultPromptTemplate
	if cfg.PromptTemplatePath != "" {
		raw, err := os.ReadFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, cfg.PromptTemplatePath, err)
		}
		templateContent = string(raw)
	}

	promptTemplate, err := template.New("flashcard").Parse(templateContent)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:         log.With(slog.String("component", "gemini_generator")),
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
		timeout:        time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Ensure GeminiGenerator implements generation.Generator
var _ generation.Generator = (*GeminiGenerator)(nil)

// Generate sends the source text to Gemini and returns the raw textual
// payload of the reply. The outbound call inherits the caller's context
// and is additionally capped at the generator's configured timeout, so
// it ends at whichever deadline comes first. The owner ID is logged for
// auditing and not forwarded upstream.
func (g *GeminiGenerator) Generate(
	ctx context.Context,
	text string,
	ownerID uuid.UUID,
) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: source text cannot be empty", generation.ErrInvalidConfig)
	}

	prompt, err := g.buildPrompt(text)
	if err != nil {
		return "", err
	}

	log := logger.FromContextOrDefault(ctx, g.logger)
	log.InfoContext(ctx, "calling Gemini API",
		slog.String("model", g.model),
		slog.String("owner_id", ownerID.String()),
		slog.Int("text_length", len(text)))

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(
		callCtx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return "", g.classifyError(ctx, err)
	}

	payload := resp.Text()
	log.InfoContext(ctx, "Gemini API call succeeded",
		slog.String("owner_id", ownerID.String()),
		slog.Int("payload_length", len(payload)))

	return payload, nil
}

// buildPrompt executes the prompt template with the source text.
func (g *GeminiGenerator) buildPrompt(text string) (string, error) {
	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, promptData{SourceText: text}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// classifyError maps a provider failure onto the generation error
// taxonomy. Upstream detail goes to the log (redacted), never to the
// returned error chain beyond the status code.
func (g *GeminiGenerator) classifyError(ctx context.Context, err error) error {
	log := logger.FromContextOrDefault(ctx, g.logger)

	if errors.Is(err, context.DeadlineExceeded) {
		log.WarnContext(ctx, "Gemini API call timed out",
			slog.Duration("timeout", g.timeout))
		return generation.ErrUpstreamTimeout
	}

	if errors.Is(err, context.Canceled) {
		log.WarnContext(ctx, "Gemini API call canceled by caller")
		return generation.ErrUpstreamTimeout
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		log.ErrorContext(ctx, "Gemini API returned an error",
			slog.Int("status", apiErr.Code),
			slog.String("error", redact.Error(err)))
		return &generation.UpstreamServiceError{Status: apiErr.Code}
	}

	log.ErrorContext(ctx, "Gemini API unreachable",
		slog.String("error", redact.Error(err)))
	return generation.ErrUpstreamUnavailable
}
