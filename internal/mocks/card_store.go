package mocks

import (
	"context"
	"database/sql"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
	"github.com/google/uuid"
)

// MockCardStore is a configurable mock implementation of store.CardStore.
type MockCardStore struct {
	CreateFn         func(ctx context.Context, card *domain.FlashCard) error
	CreateMultipleFn func(ctx context.Context, cards []*domain.FlashCard) error
	GetForOwnerFn    func(ctx context.Context, id, ownerID uuid.UUID) (*domain.FlashCard, error)
	ListForOwnerFn   func(ctx context.Context, ownerID uuid.UUID, sessionID *uuid.UUID) ([]*domain.FlashCard, error)
	DeleteForOwnerFn func(ctx context.Context, id, ownerID uuid.UUID) error

	// CreateMultipleCalls records every batch passed to CreateMultiple.
	CreateMultipleCalls [][]*domain.FlashCard
}

var _ store.CardStore = (*MockCardStore)(nil)

func (m *MockCardStore) Create(ctx context.Context, card *domain.FlashCard) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}
	return nil
}

func (m *MockCardStore) CreateMultiple(ctx context.Context, cards []*domain.FlashCard) error {
	m.CreateMultipleCalls = append(m.CreateMultipleCalls, cards)
	if m.CreateMultipleFn != nil {
		return m.CreateMultipleFn(ctx, cards)
	}
	return nil
}

func (m *MockCardStore) GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.FlashCard, error) {
	if m.GetForOwnerFn != nil {
		return m.GetForOwnerFn(ctx, id, ownerID)
	}
	return nil, store.ErrCardNotFound
}

func (m *MockCardStore) ListForOwner(ctx context.Context, ownerID uuid.UUID, sessionID *uuid.UUID) ([]*domain.FlashCard, error) {
	if m.ListForOwnerFn != nil {
		return m.ListForOwnerFn(ctx, ownerID, sessionID)
	}
	return []*domain.FlashCard{}, nil
}

func (m *MockCardStore) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.DeleteForOwnerFn != nil {
		return m.DeleteForOwnerFn(ctx, id, ownerID)
	}
	return nil
}

func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return m
}
