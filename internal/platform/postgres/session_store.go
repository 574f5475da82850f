package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
	"github.com/google/uuid"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// WithTx implements store.SessionStore.WithTx
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.SessionStore.Create
// It saves a new session to the database, handling domain validation.
// Owner identity is external, so owner_id carries no foreign key and any
// uuid is accepted.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO sessions (id, owner_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.OwnerID,
		session.Name,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		if isCheckViolation(err) {
			log.Warn("check violation during session creation",
				slog.String("session_id", session.ID.String()))
			return fmt.Errorf("%w: session name violates constraints",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()),
			slog.String("owner_id", session.OwnerID.String()))
		return err
	}

	log.Info("session created successfully",
		slog.String("session_id", session.ID.String()),
		slog.String("owner_id", session.OwnerID.String()))
	return nil
}

// GetForOwner implements store.SessionStore.GetForOwner
// The owner predicate lives in the query itself, so a session under a
// different owner scans as no rows.
func (s *PostgresSessionStore) GetForOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, created_at, updated_at
		FROM sessions
		WHERE id = $1 AND owner_id = $2
	`

	var session domain.Session
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&session.ID,
		&session.OwnerID,
		&session.Name,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("session not found for owner",
				slog.String("session_id", id.String()))
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get session by ID",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return nil, err
	}

	return &session, nil
}

// ListForOwner implements store.SessionStore.ListForOwner
func (s *PostgresSessionStore) ListForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, created_at, updated_at
		FROM sessions
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to query sessions for owner",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	sessions := []*domain.Session{}
	for rows.Next() {
		var session domain.Session
		err := rows.Scan(
			&session.ID,
			&session.OwnerID,
			&session.Name,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan session row",
				slog.String("error", err.Error()))
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed sessions for owner",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(sessions)))
	return sessions, nil
}

// Rename implements store.SessionStore.Rename
// It updates the session name and refreshes updated_at in one statement,
// scoped to the owner. Returns the updated session.
func (s *PostgresSessionStore) Rename(
	ctx context.Context,
	id, ownerID uuid.UUID,
	name string,
) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrSessionNameEmpty)
	}
	if len(trimmed) > domain.MaxSessionNameLength {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrSessionNameTooLong)
	}

	query := `
		UPDATE sessions
		SET name = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
		RETURNING id, owner_id, name, created_at, updated_at
	`

	var session domain.Session
	err := s.db.QueryRowContext(ctx, query, trimmed, time.Now().UTC(), id, ownerID).Scan(
		&session.ID,
		&session.OwnerID,
		&session.Name,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("session not found for rename",
				slog.String("session_id", id.String()))
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to rename session",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return nil, err
	}

	log.Info("session renamed successfully",
		slog.String("session_id", id.String()))
	return &session, nil
}

// DeleteForOwner implements store.SessionStore.DeleteForOwner
// Bound flashcards are removed by the ON DELETE CASCADE foreign key on
// flashcards.session_id; the application does not delete them itself.
func (s *PostgresSessionStore) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM sessions
		WHERE id = $1 AND owner_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete session",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("session not found for delete",
			slog.String("session_id", id.String()))
		return store.ErrSessionNotFound
	}

	log.Info("session deleted successfully",
		slog.String("session_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}
