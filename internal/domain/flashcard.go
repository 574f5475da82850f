package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxCardSideLength bounds the length of a flashcard's front and back text.
const MaxCardSideLength = 2000

// FlashCard-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardOwnerIDEmpty is returned when a card's owner ID is empty or nil.
	ErrCardOwnerIDEmpty = errors.New("card owner ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front text is empty after trimming.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back text is empty after trimming.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrCardFrontTooLong is returned when a card's front text exceeds MaxCardSideLength.
	ErrCardFrontTooLong = errors.New("card front is too long")

	// ErrCardBackTooLong is returned when a card's back text exceeds MaxCardSideLength.
	ErrCardBackTooLong = errors.New("card back is too long")
)

// CardContent is a bare {front, back} pair. It is the currency between
// the response parser, the staging batch, and the session committer.
type CardContent struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashCard represents a durable question/answer pair owned by a user.
// SessionID is nil for standalone cards and set for cards committed as
// part of a session; the database cascades deletion from the session.
type FlashCard struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	Front     string     `json:"front"`
	Back      string     `json:"back"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewFlashCard creates a new FlashCard with the given owner, optional
// session binding, and content. Front and back are trimmed before
// validation. Returns an error if validation fails.
func NewFlashCard(ownerID uuid.UUID, sessionID *uuid.UUID, front, back string) (*FlashCard, error) {
	card := &FlashCard{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		SessionID: sessionID,
		Front:     strings.TrimSpace(front),
		Back:      strings.TrimSpace(back),
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the FlashCard has valid data.
// Returns an error if any field fails validation.
func (c *FlashCard) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.OwnerID == uuid.Nil {
		return ErrCardOwnerIDEmpty
	}

	if strings.TrimSpace(c.Front) == "" {
		return ErrCardFrontEmpty
	}

	if strings.TrimSpace(c.Back) == "" {
		return ErrCardBackEmpty
	}

	if len(c.Front) > MaxCardSideLength {
		return ErrCardFrontTooLong
	}

	if len(c.Back) > MaxCardSideLength {
		return ErrCardBackTooLong
	}

	return nil
}
