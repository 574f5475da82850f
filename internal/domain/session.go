package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxSessionNameLength bounds the length of a session name.
const MaxSessionNameLength = 255

// Session-specific validation errors
var (
	// ErrSessionIDEmpty is returned when a session ID is empty or nil.
	ErrSessionIDEmpty = errors.New("session ID cannot be empty")

	// ErrSessionOwnerIDEmpty is returned when a session's owner ID is empty or nil.
	ErrSessionOwnerIDEmpty = errors.New("session owner ID cannot be empty")

	// ErrSessionNameEmpty is returned when a session name is empty after trimming.
	ErrSessionNameEmpty = errors.New("session name cannot be empty")

	// ErrSessionNameTooLong is returned when a session name exceeds MaxSessionNameLength.
	ErrSessionNameTooLong = errors.New("session name is too long")
)

// Session represents a durable, named, owned collection of flashcards
// produced by committing the accepted subset of a generation batch.
type Session struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a new Session owned by the given user. The name is
// trimmed before validation. Returns an error if validation fails.
func NewSession(ownerID uuid.UUID, name string) (*Session, error) {
	session := &Session{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// DefaultSessionName returns the name used when a commit omits one.
func DefaultSessionName(now time.Time) string {
	return "Session " + now.UTC().Format("2006-01-02")
}

// Validate checks if the Session has valid data.
// Returns an error if any field fails validation.
func (s *Session) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if s.OwnerID == uuid.Nil {
		return ErrSessionOwnerIDEmpty
	}

	if strings.TrimSpace(s.Name) == "" {
		return ErrSessionNameEmpty
	}

	if len(s.Name) > MaxSessionNameLength {
		return ErrSessionNameTooLong
	}

	return nil
}

// Rename replaces the session's name and refreshes the UpdatedAt
// timestamp. Returns an error if the new name is invalid.
func (s *Session) Rename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrSessionNameEmpty
	}
	if len(trimmed) > MaxSessionNameLength {
		return ErrSessionNameTooLong
	}

	s.Name = trimmed
	s.UpdatedAt = time.Now().UTC()
	return nil
}
