package store

import (
	"context"
	"database/sql"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/google/uuid"
)

// CardStore defines the interface for flashcard data persistence.
// All reads and mutations except the create methods are owner-scoped;
// an id under a different owner behaves exactly like a missing id.
type CardStore interface {
	// Create saves a single flashcard, standalone or session-bound.
	// It handles domain validation internally.
	Create(ctx context.Context, card *domain.FlashCard) error

	// CreateMultiple saves a batch of flashcards. The insert is atomic:
	// when called on a plain connection it opens its own transaction, and
	// when already inside one (via WithTx) it joins it. All cards must be
	// valid; validation errors abort the whole batch.
	CreateMultiple(ctx context.Context, cards []*domain.FlashCard) error

	// GetForOwner retrieves a flashcard by id, scoped to the given owner.
	// Returns ErrCardNotFound if no such card exists for the owner.
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.FlashCard, error)

	// ListForOwner retrieves the owner's flashcards, newest first. A
	// non-nil sessionID restricts the result to cards bound to that
	// session. Returns an empty slice when nothing matches.
	ListForOwner(ctx context.Context, ownerID uuid.UUID, sessionID *uuid.UUID) ([]*domain.FlashCard, error)

	// DeleteForOwner removes a flashcard, scoped to the given owner.
	// Returns ErrCardNotFound if no such card exists for the owner.
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error

	// WithTx returns a new CardStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) CardStore
}
