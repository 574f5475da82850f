package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/redact"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
	"github.com/google/uuid"
)

// CommitResult reports the outcome of a session commit. Session is nil
// when the commit was a no-op because nothing was accepted.
type CommitResult struct {
	Session   *domain.Session
	CardCount int
}

// SessionService owns the lifecycle of committed sessions.
type SessionService interface {
	// CommitSession persists the accepted card contents as a new named
	// session. An empty accepted set is a successful no-op that creates
	// nothing. A blank name falls back to a date-based default.
	//
	// The commit is a two-step write: the session row first, then the
	// cards in one atomic batch. If the card write fails the session row
	// is deleted again so a session never survives without its cards.
	CommitSession(ctx context.Context, ownerID uuid.UUID, name string, accepted []domain.CardContent) (*CommitResult, error)

	// GetSession retrieves one of the owner's sessions.
	GetSession(ctx context.Context, ownerID, sessionID uuid.UUID) (*domain.Session, error)

	// ListSessions retrieves all of the owner's sessions, newest first.
	ListSessions(ctx context.Context, ownerID uuid.UUID) ([]*domain.Session, error)

	// RenameSession updates the name of one of the owner's sessions and
	// returns the updated session.
	RenameSession(ctx context.Context, ownerID, sessionID uuid.UUID, name string) (*domain.Session, error)

	// DeleteSession removes one of the owner's sessions together with
	// all cards bound to it.
	DeleteSession(ctx context.Context, ownerID, sessionID uuid.UUID) error
}

type sessionService struct {
	sessionStore store.SessionStore
	cardStore    store.CardStore
	logger       *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionStore store.SessionStore, cardStore store.CardStore, log *slog.Logger) (SessionService, error) {
	if sessionStore == nil {
		return nil, errors.New("session store cannot be nil")
	}
	if cardStore == nil {
		return nil, errors.New("card store cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &sessionService{
		sessionStore: sessionStore,
		cardStore:    cardStore,
		logger:       log.With(slog.String("component", "session_service")),
	}, nil
}

func (s *sessionService) CommitSession(ctx context.Context, ownerID uuid.UUID, name string, accepted []domain.CardContent) (*CommitResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(accepted) == 0 {
		log.Debug("commit with no accepted cards is a no-op",
			slog.String("owner_id", ownerID.String()))
		return &CommitResult{CardCount: 0}, nil
	}

	if strings.TrimSpace(name) == "" {
		name = domain.DefaultSessionName(time.Now())
	}

	session, err := domain.NewSession(ownerID, name)
	if err != nil {
		return nil, sessionNameViolation(err)
	}

	// Build and validate every card before touching storage so a bad
	// card cannot leave a half-written session behind.
	cards := make([]*domain.FlashCard, 0, len(accepted))
	for i, content := range accepted {
		card, err := domain.NewFlashCard(ownerID, &session.ID, content.Front, content.Back)
		if err != nil {
			return nil, cardContentViolation(fmt.Sprintf("accepted_cards[%d]", i), err)
		}
		cards = append(cards, card)
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		log.Error("failed to create session",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%w: creating session", ErrPersistence)
	}

	if err := s.cardStore.CreateMultiple(ctx, cards); err != nil {
		log.Error("failed to persist committed cards, removing session",
			slog.String("session_id", session.ID.String()),
			slog.String("error", redact.Error(err)))
		// Compensating delete. A failure here leaves an empty session
		// behind; it is logged and the commit still reports failure.
		if delErr := s.sessionStore.DeleteForOwner(ctx, session.ID, ownerID); delErr != nil {
			log.Error("compensating session delete failed",
				slog.String("session_id", session.ID.String()),
				slog.String("error", redact.Error(delErr)))
		}
		return nil, fmt.Errorf("%w: persisting cards", ErrPersistence)
	}

	log.Info("committed session",
		slog.String("session_id", session.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.Int("card_count", len(cards)))
	return &CommitResult{Session: session, CardCount: len(cards)}, nil
}

func (s *sessionService) GetSession(ctx context.Context, ownerID, sessionID uuid.UUID) (*domain.Session, error) {
	return s.sessionStore.GetForOwner(ctx, sessionID, ownerID)
}

func (s *sessionService) ListSessions(ctx context.Context, ownerID uuid.UUID) ([]*domain.Session, error) {
	return s.sessionStore.ListForOwner(ctx, ownerID)
}

func (s *sessionService) RenameSession(ctx context.Context, ownerID, sessionID uuid.UUID, name string) (*domain.Session, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, sessionNameViolation(domain.ErrSessionNameEmpty)
	}
	if len(trimmed) > domain.MaxSessionNameLength {
		return nil, sessionNameViolation(domain.ErrSessionNameTooLong)
	}
	return s.sessionStore.Rename(ctx, sessionID, ownerID, trimmed)
}

func (s *sessionService) DeleteSession(ctx context.Context, ownerID, sessionID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := s.sessionStore.DeleteForOwner(ctx, sessionID, ownerID); err != nil {
		return err
	}
	log.Info("deleted session",
		slog.String("session_id", sessionID.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}
