package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SvenFlower/ai-flash-cards/internal/api/shared"
	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateCardRequest is the request body for creating a standalone card.
type CreateCardRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"  validate:"required"`
}

// CardResponse represents the response data for a flashcard.
type CardResponse struct {
	ID        string    `json:"id"`
	SessionID *string   `json:"session_id,omitempty"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"created_at"`
}

// CardListResponse wraps the owner's flashcards.
type CardListResponse struct {
	Flashcards []CardResponse `json:"flashcards"`
}

// CardHandler handles flashcard-related HTTP requests.
type CardHandler struct {
	cardService service.CardService
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService: cardService,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

func toCardResponse(card *domain.FlashCard) CardResponse {
	resp := CardResponse{
		ID:        card.ID.String(),
		Front:     card.Front,
		Back:      card.Back,
		CreatedAt: card.CreatedAt,
	}
	if card.SessionID != nil {
		sessionID := card.SessionID.String()
		resp.SessionID = &sessionID
	}
	return resp
}

// CreateCard handles POST /flashcards requests for standalone cards.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		RespondWithMappedError(w, r, requestViolations(err))
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), userID, req.Front, req.Back)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, toCardResponse(card))
}

// ListCards handles GET /flashcards requests. The optional session_id
// query parameter restricts the result to one session's cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	var sessionID *uuid.UUID
	if raw := r.URL.Query().Get("session_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusNotFound, CodeNotFound, "Session not found")
			return
		}
		sessionID = &parsed
	}

	cards, err := h.cardService.ListCards(r.Context(), userID, sessionID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	resp := CardListResponse{Flashcards: make([]CardResponse, 0, len(cards))}
	for _, card := range cards {
		resp.Flashcards = append(resp.Flashcards, toCardResponse(card))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetCard handles GET /flashcards/{id} requests.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, CodeNotFound, "Flashcard not found")
		return
	}

	card, err := h.cardService.GetCard(r.Context(), userID, cardID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toCardResponse(card))
}

// DeleteCard handles DELETE /flashcards/{id} requests.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, CodeNotFound, "Flashcard not found")
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), userID, cardID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
