package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SvenFlower/ai-flash-cards/internal/api"
	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/mocks"
	"github.com/SvenFlower/ai-flash-cards/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardRouter(t *testing.T, cards *mocks.MockCardStore, sessions *mocks.MockSessionStore, userID uuid.UUID) *chi.Mux {
	t.Helper()
	svc, err := service.NewCardService(cards, sessions, testLogger())
	require.NoError(t, err)

	handler := api.NewCardHandler(svc, testLogger())
	router := chi.NewRouter()
	router.Use(withUserID(userID))
	router.Post("/api/flashcards", handler.CreateCard)
	router.Get("/api/flashcards", handler.ListCards)
	router.Get("/api/flashcards/{id}", handler.GetCard)
	router.Delete("/api/flashcards/{id}", handler.DeleteCard)
	return router
}

func TestCreateCardHandler_Success(t *testing.T) {
	t.Parallel()

	cards := &mocks.MockCardStore{}
	router := newCardRouter(t, cards, &mocks.MockSessionStore{}, uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/flashcards", `{"front": "q1", "back": "a1"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp api.CardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "q1", resp.Front)
	assert.Equal(t, "a1", resp.Back)
	assert.Nil(t, resp.SessionID)
}

func TestCreateCardHandler_InvalidContent(t *testing.T) {
	t.Parallel()

	router := newCardRouter(t, &mocks.MockCardStore{}, &mocks.MockSessionStore{}, uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/flashcards", `{"front": "", "back": "a1"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, api.CodeValidationError, resp.Code)
	assert.Contains(t, resp.Fields["front"], domain.CodeFrontRequired)
}

func TestListCardsHandler_SessionFilter(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	sessionID := uuid.New()
	sessions := &mocks.MockSessionStore{
		GetForOwnerFn: func(ctx context.Context, id, owner uuid.UUID) (*domain.Session, error) {
			return &domain.Session{ID: id, OwnerID: owner, Name: "s"}, nil
		},
	}
	cards := &mocks.MockCardStore{
		ListForOwnerFn: func(ctx context.Context, owner uuid.UUID, session *uuid.UUID) ([]*domain.FlashCard, error) {
			require.NotNil(t, session)
			assert.Equal(t, sessionID, *session)
			return []*domain.FlashCard{
				{ID: uuid.New(), OwnerID: owner, SessionID: session, Front: "q1", Back: "a1"},
			}, nil
		},
	}
	router := newCardRouter(t, cards, sessions, ownerID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flashcards?session_id="+sessionID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.CardListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Flashcards, 1)
	require.NotNil(t, resp.Flashcards[0].SessionID)
	assert.Equal(t, sessionID.String(), *resp.Flashcards[0].SessionID)
}

func TestListCardsHandler_ForeignSessionReadsAsNotFound(t *testing.T) {
	t.Parallel()

	// The default mock resolves no session, as for one owned by someone else.
	router := newCardRouter(t, &mocks.MockCardStore{}, &mocks.MockSessionStore{}, uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flashcards?session_id="+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, api.CodeNotFound, decodeError(t, rec).Code)
}

func TestGetCardHandler_NotFound(t *testing.T) {
	t.Parallel()

	router := newCardRouter(t, &mocks.MockCardStore{}, &mocks.MockSessionStore{}, uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flashcards/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, api.CodeNotFound, decodeError(t, rec).Code)
}

func TestDeleteCardHandler_Success(t *testing.T) {
	t.Parallel()

	router := newCardRouter(t, &mocks.MockCardStore{}, &mocks.MockSessionStore{}, uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/flashcards/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
