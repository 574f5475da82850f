package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/platform/logger"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
	"github.com/google/uuid"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.FlashCard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.insertOne(ctx, s.db, card); err != nil {
		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()),
			slog.String("owner_id", card.OwnerID.String()))
		return err
	}

	log.Info("card created successfully",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", card.OwnerID.String()))
	return nil
}

// CreateMultiple implements store.CardStore.CreateMultiple
// When backed by a plain connection it opens its own transaction so the
// batch lands atomically; when already inside a transaction (WithTx) it
// joins it. A single invalid card aborts the whole batch.
func (s *PostgresCardStore) CreateMultiple(ctx context.Context, cards []*domain.FlashCard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(cards) == 0 {
		return nil
	}

	for _, card := range cards {
		if err := card.Validate(); err != nil {
			log.Warn("card validation failed during batch create",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	insertAll := func(ctx context.Context, db store.DBTX) error {
		for _, card := range cards {
			if err := s.insertOne(ctx, db, card); err != nil {
				return err
			}
		}
		return nil
	}

	var err error
	if sqlDB, ok := s.db.(*sql.DB); ok {
		err = store.RunInTransaction(ctx, sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return insertAll(ctx, tx)
		})
	} else {
		err = insertAll(ctx, s.db)
	}

	if err != nil {
		log.Error("failed to create card batch",
			slog.String("error", err.Error()),
			slog.Int("count", len(cards)))
		return err
	}

	log.Info("card batch created successfully",
		slog.Int("count", len(cards)),
		slog.String("owner_id", cards[0].OwnerID.String()))
	return nil
}

// insertOne writes a single card row.
func (s *PostgresCardStore) insertOne(ctx context.Context, db store.DBTX, card *domain.FlashCard) error {
	query := `
		INSERT INTO flashcards (id, owner_id, session_id, front, back, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.ExecContext(
		ctx,
		query,
		card.ID,
		card.OwnerID,
		card.SessionID,
		card.Front,
		card.Back,
		card.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced session or owner not found",
				store.ErrInvalidEntity)
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: card content violates constraints",
				store.ErrInvalidEntity)
		}
		return err
	}
	return nil
}

// GetForOwner implements store.CardStore.GetForOwner
func (s *PostgresCardStore) GetForOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.FlashCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, session_id, front, back, created_at
		FROM flashcards
		WHERE id = $1 AND owner_id = $2
	`

	var card domain.FlashCard
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&card.ID,
		&card.OwnerID,
		&card.SessionID,
		&card.Front,
		&card.Back,
		&card.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found for owner",
				slog.String("card_id", id.String()))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by ID",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, err
	}

	return &card, nil
}

// ListForOwner implements store.CardStore.ListForOwner
func (s *PostgresCardStore) ListForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	sessionID *uuid.UUID,
) ([]*domain.FlashCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, session_id, front, back, created_at
		FROM flashcards
		WHERE owner_id = $1 AND ($2::uuid IS NULL OR session_id = $2)
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, sessionID)
	if err != nil {
		log.Error("failed to query cards for owner",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cards := []*domain.FlashCard{}
	for rows.Next() {
		var card domain.FlashCard
		err := rows.Scan(
			&card.ID,
			&card.OwnerID,
			&card.SessionID,
			&card.Front,
			&card.Back,
			&card.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan card row",
				slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed cards for owner",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// DeleteForOwner implements store.CardStore.DeleteForOwner
func (s *PostgresCardStore) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM flashcards
		WHERE id = $1 AND owner_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("card not found for delete",
			slog.String("card_id", id.String()))
		return store.ErrCardNotFound
	}

	log.Info("card deleted successfully",
		slog.String("card_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}
