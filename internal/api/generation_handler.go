package api

import (
	"log/slog"
	"net/http"

	"github.com/SvenFlower/ai-flash-cards/internal/api/shared"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/service"
	"github.com/google/uuid"
)

// GenerateRequest is the request body for flashcard generation.
type GenerateRequest struct {
	Text string `json:"text" validate:"required"`
}

// CardContentPayload is a bare {front, back} pair as it appears in
// request and response bodies.
type CardContentPayload struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"  validate:"required"`
}

// GenerateResponse carries the proposed flashcards for client-side triage.
type GenerateResponse struct {
	Flashcards []CardContentPayload `json:"flashcards"`
}

// GenerationHandler handles flashcard generation HTTP requests.
type GenerationHandler struct {
	generationService service.GenerationService
	logger            *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService service.GenerationService, logger *slog.Logger) *GenerationHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GenerationHandler")
	}

	return &GenerationHandler{
		generationService: generationService,
		logger:            logger.With(slog.String("component", "generation_handler")),
	}
}

// GenerateFlashcards handles POST /flashcards/generate requests.
// It validates the submitted text, calls the provider, and returns the
// proposed cards for the caller to triage.
func (h *GenerationHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		RespondWithMappedError(w, r, requestViolations(err))
		return
	}

	batch, err := h.generationService.GenerateBatch(r.Context(), userID, req.Text)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	resp := GenerateResponse{Flashcards: make([]CardContentPayload, 0, batch.Len())}
	for _, candidate := range batch.Candidates() {
		resp.Flashcards = append(resp.Flashcards, CardContentPayload{
			Front: candidate.Front,
			Back:  candidate.Back,
		})
	}

	log.Debug("generated flashcard proposals",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(resp.Flashcards)))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
