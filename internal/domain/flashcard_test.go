package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewFlashCard(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	sessionID := uuid.New()

	card, err := NewFlashCard(ownerID, &sessionID, "What is ATP?", "Adenosine triphosphate")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if card.OwnerID != ownerID {
		t.Errorf("Expected owner ID %s, got %s", ownerID, card.OwnerID)
	}

	if card.SessionID == nil || *card.SessionID != sessionID {
		t.Errorf("Expected session ID %s, got %v", sessionID, card.SessionID)
	}

	if card.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Standalone cards carry no session binding.
	card, err = NewFlashCard(ownerID, nil, "Front", "Back")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card.SessionID != nil {
		t.Errorf("Expected nil session ID, got %v", card.SessionID)
	}

	// Content is trimmed before validation.
	card, err = NewFlashCard(ownerID, nil, "  Front  ", "\tBack\n")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card.Front != "Front" || card.Back != "Back" {
		t.Errorf("Expected trimmed content, got %q / %q", card.Front, card.Back)
	}
}

func TestFlashCardValidate(t *testing.T) {
	t.Parallel()
	validCard := FlashCard{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Front:   "Front",
		Back:    "Back",
	}

	if err := validCard.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*FlashCard)
		want   error
	}{
		{"nil ID", func(c *FlashCard) { c.ID = uuid.Nil }, ErrCardIDEmpty},
		{"nil owner", func(c *FlashCard) { c.OwnerID = uuid.Nil }, ErrCardOwnerIDEmpty},
		{"blank front", func(c *FlashCard) { c.Front = "   " }, ErrCardFrontEmpty},
		{"blank back", func(c *FlashCard) { c.Back = "" }, ErrCardBackEmpty},
		{"long front", func(c *FlashCard) { c.Front = strings.Repeat("x", MaxCardSideLength+1) }, ErrCardFrontTooLong},
		{"long back", func(c *FlashCard) { c.Back = strings.Repeat("x", MaxCardSideLength+1) }, ErrCardBackTooLong},
	}

	for _, tc := range cases {
		card := validCard
		tc.mutate(&card)
		if err := card.Validate(); err != tc.want {
			t.Errorf("%s: expected error %v, got %v", tc.name, tc.want, err)
		}
	}
}
