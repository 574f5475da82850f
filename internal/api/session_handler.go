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

// CommitSessionRequest is the request body for committing accepted cards
// into a new session. Name is optional; a blank name gets a date-based
// default.
type CommitSessionRequest struct {
	Name          string               `json:"name"`
	AcceptedCards []CardContentPayload `json:"accepted_cards" validate:"omitempty,dive"`
}

// RenameSessionRequest is the request body for renaming a session.
type RenameSessionRequest struct {
	Name string `json:"name" validate:"required"`
}

// SessionResponse represents the response data for a session.
type SessionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommitSessionResponse reports the outcome of a commit. Session is null
// when nothing was accepted and no session was created.
type CommitSessionResponse struct {
	Session *SessionResponse `json:"session"`
	Count   int              `json:"count"`
}

// SessionListResponse wraps the owner's sessions.
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// SessionHandler handles session-related HTTP requests.
type SessionHandler struct {
	sessionService service.SessionService
	logger         *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger.With(slog.String("component", "session_handler")),
	}
}

func toSessionResponse(session *domain.Session) SessionResponse {
	return SessionResponse{
		ID:        session.ID.String(),
		Name:      session.Name,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

// CommitSession handles POST /sessions requests. It persists the accepted
// cards as a new named session, or answers 200 with a null session when
// nothing was accepted.
func (h *SessionHandler) CommitSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	var req CommitSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		RespondWithMappedError(w, r, requestViolations(err))
		return
	}

	accepted := make([]domain.CardContent, 0, len(req.AcceptedCards))
	for _, card := range req.AcceptedCards {
		accepted = append(accepted, domain.CardContent{Front: card.Front, Back: card.Back})
	}

	result, err := h.sessionService.CommitSession(r.Context(), userID, req.Name, accepted)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	if result.Session == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, CommitSessionResponse{Session: nil, Count: 0})
		return
	}

	resp := toSessionResponse(result.Session)
	shared.RespondWithJSON(w, r, http.StatusCreated, CommitSessionResponse{
		Session: &resp,
		Count:   result.CardCount,
	})
}

// ListSessions handles GET /sessions requests.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	sessions, err := h.sessionService.ListSessions(r.Context(), userID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	resp := SessionListResponse{Sessions: make([]SessionResponse, 0, len(sessions))}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(session))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetSession handles GET /sessions/{id} requests.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An unparsable id cannot name an existing session.
		shared.RespondWithError(w, r, http.StatusNotFound, CodeNotFound, "Session not found")
		return
	}

	session, err := h.sessionService.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toSessionResponse(session))
}

// RenameSession handles PUT /sessions/{id} requests.
func (h *SessionHandler) RenameSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, CodeNotFound, "Session not found")
		return
	}

	var req RenameSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		RespondWithMappedError(w, r, requestViolations(err))
		return
	}

	session, err := h.sessionService.RenameSession(r.Context(), userID, sessionID, req.Name)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toSessionResponse(session))
}

// DeleteSession handles DELETE /sessions/{id} requests. Deleting a
// session removes all cards committed to it.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, CodeAuthRequired, "User ID not found or invalid")
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, CodeNotFound, "Session not found")
		return
	}

	if err := h.sessionService.DeleteSession(r.Context(), userID, sessionID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
