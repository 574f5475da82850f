package service

import (
	"errors"
	"fmt"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
)

// ErrPersistence is returned when a commit or create could not be made
// durable. It covers both the initial write failing and a partial write
// that was rolled back.
var ErrPersistence = errors.New("failed to persist changes")

// sessionNameViolation maps domain session validation sentinels onto a
// field-level ValidationError for the name field. Unknown errors pass
// through unchanged.
func sessionNameViolation(err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNameEmpty):
		return domain.NewValidationError("name", domain.CodeNameRequired, "session name cannot be empty")
	case errors.Is(err, domain.ErrSessionNameTooLong):
		return domain.NewValidationError("name", domain.CodeNameTooLong,
			fmt.Sprintf("session name must be at most %d characters", domain.MaxSessionNameLength))
	default:
		return err
	}
}

// cardContentViolation maps domain flashcard validation sentinels onto a
// field-level ValidationError. The prefix names the offending card in
// the request, e.g. "accepted_cards[2]"; an empty prefix reports the
// bare side name.
func cardContentViolation(prefix string, err error) error {
	field := func(side string) string {
		if prefix == "" {
			return side
		}
		return prefix + "." + side
	}

	switch {
	case errors.Is(err, domain.ErrCardFrontEmpty):
		return domain.NewValidationError(field("front"), domain.CodeFrontRequired, "card front cannot be empty")
	case errors.Is(err, domain.ErrCardBackEmpty):
		return domain.NewValidationError(field("back"), domain.CodeBackRequired, "card back cannot be empty")
	case errors.Is(err, domain.ErrCardFrontTooLong):
		return domain.NewValidationError(field("front"), domain.CodeFrontTooLong,
			fmt.Sprintf("card front must be at most %d characters", domain.MaxCardSideLength))
	case errors.Is(err, domain.ErrCardBackTooLong):
		return domain.NewValidationError(field("back"), domain.CodeBackTooLong,
			fmt.Sprintf("card back must be at most %d characters", domain.MaxCardSideLength))
	default:
		return err
	}
}
