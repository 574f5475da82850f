package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/redact"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
	"github.com/google/uuid"
)

// CardService owns standalone flashcards and read access to all of an
// owner's cards, session-bound or not.
type CardService interface {
	// CreateCard persists a standalone card not bound to any session.
	CreateCard(ctx context.Context, ownerID uuid.UUID, front, back string) (*domain.FlashCard, error)

	// GetCard retrieves one of the owner's cards.
	GetCard(ctx context.Context, ownerID, cardID uuid.UUID) (*domain.FlashCard, error)

	// ListCards retrieves the owner's cards, newest first. A non-nil
	// sessionID restricts the result to that session's cards; the
	// session must belong to the owner.
	ListCards(ctx context.Context, ownerID uuid.UUID, sessionID *uuid.UUID) ([]*domain.FlashCard, error)

	// DeleteCard removes one of the owner's cards.
	DeleteCard(ctx context.Context, ownerID, cardID uuid.UUID) error
}

type cardService struct {
	cardStore    store.CardStore
	sessionStore store.SessionStore
	logger       *slog.Logger
}

// NewCardService creates a new CardService.
func NewCardService(cardStore store.CardStore, sessionStore store.SessionStore, log *slog.Logger) (CardService, error) {
	if cardStore == nil {
		return nil, errors.New("card store cannot be nil")
	}
	if sessionStore == nil {
		return nil, errors.New("session store cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &cardService{
		cardStore:    cardStore,
		sessionStore: sessionStore,
		logger:       log.With(slog.String("component", "card_service")),
	}, nil
}

func (s *cardService) CreateCard(ctx context.Context, ownerID uuid.UUID, front, back string) (*domain.FlashCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := domain.NewFlashCard(ownerID, nil, front, back)
	if err != nil {
		return nil, cardContentViolation("", err)
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		log.Error("failed to create card",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%w: creating card", ErrPersistence)
	}

	log.Debug("created card",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return card, nil
}

func (s *cardService) GetCard(ctx context.Context, ownerID, cardID uuid.UUID) (*domain.FlashCard, error) {
	return s.cardStore.GetForOwner(ctx, cardID, ownerID)
}

func (s *cardService) ListCards(ctx context.Context, ownerID uuid.UUID, sessionID *uuid.UUID) ([]*domain.FlashCard, error) {
	// When filtering by session, resolve it owner-scoped first so a
	// session under another owner reads as not found rather than as an
	// empty list.
	if sessionID != nil {
		if _, err := s.sessionStore.GetForOwner(ctx, *sessionID, ownerID); err != nil {
			return nil, err
		}
	}
	return s.cardStore.ListForOwner(ctx, ownerID, sessionID)
}

func (s *cardService) DeleteCard(ctx context.Context, ownerID, cardID uuid.UUID) error {
	return s.cardStore.DeleteForOwner(ctx, cardID, ownerID)
}
