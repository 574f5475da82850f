package store

import (
	"context"
	"database/sql"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/google/uuid"
)

// SessionStore defines the interface for session data persistence.
// All reads and mutations except Create are owner-scoped; passing an
// id that exists under a different owner behaves exactly like a
// missing id and returns ErrSessionNotFound.
type SessionStore interface {
	// Create saves a new session to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Session if data is invalid.
	Create(ctx context.Context, session *domain.Session) error

	// GetForOwner retrieves a session by id, scoped to the given owner.
	// Returns ErrSessionNotFound if no such session exists for the owner.
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Session, error)

	// ListForOwner retrieves all sessions belonging to the owner,
	// newest first. Returns an empty slice when the owner has none.
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Session, error)

	// Rename updates a session's name and refreshes its updated_at
	// timestamp, scoped to the given owner. Returns the updated session,
	// or ErrSessionNotFound if no such session exists for the owner.
	Rename(ctx context.Context, id, ownerID uuid.UUID, name string) (*domain.Session, error)

	// DeleteForOwner removes a session, scoped to the given owner.
	// Deletion cascades to every flashcard bound to the session through
	// the database-level ON DELETE CASCADE foreign key.
	// Returns ErrSessionNotFound if no such session exists for the owner.
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error

	// WithTx returns a new SessionStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) SessionStore
}
