package mocks

import (
	"context"
	"database/sql"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/SvenFlower/ai-flash-cards/internal/store"
	"github.com/google/uuid"
)

// MockSessionStore is a configurable mock implementation of store.SessionStore.
// Each method delegates to the corresponding function field when set and
// returns zero values otherwise.
type MockSessionStore struct {
	CreateFn         func(ctx context.Context, session *domain.Session) error
	GetForOwnerFn    func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Session, error)
	ListForOwnerFn   func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Session, error)
	RenameFn         func(ctx context.Context, id, ownerID uuid.UUID, name string) (*domain.Session, error)
	DeleteForOwnerFn func(ctx context.Context, id, ownerID uuid.UUID) error

	// CreateCalls records every session passed to Create.
	CreateCalls []*domain.Session
	// DeleteCalls records the id of every DeleteForOwner invocation.
	DeleteCalls []uuid.UUID
}

var _ store.SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	m.CreateCalls = append(m.CreateCalls, session)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}
	return nil
}

func (m *MockSessionStore) GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Session, error) {
	if m.GetForOwnerFn != nil {
		return m.GetForOwnerFn(ctx, id, ownerID)
	}
	return nil, store.ErrSessionNotFound
}

func (m *MockSessionStore) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Session, error) {
	if m.ListForOwnerFn != nil {
		return m.ListForOwnerFn(ctx, ownerID)
	}
	return []*domain.Session{}, nil
}

func (m *MockSessionStore) Rename(ctx context.Context, id, ownerID uuid.UUID, name string) (*domain.Session, error) {
	if m.RenameFn != nil {
		return m.RenameFn(ctx, id, ownerID, name)
	}
	return nil, store.ErrSessionNotFound
}

func (m *MockSessionStore) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteForOwnerFn != nil {
		return m.DeleteForOwnerFn(ctx, id, ownerID)
	}
	return nil
}

func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return m
}
