package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// CandidateStatus represents the triage state of a candidate card.
type CandidateStatus string

// Possible candidate status values. Transitions are monotonic: a
// candidate leaves pending exactly once, accepted candidates may be
// re-edited but never return to pending, and rejected is terminal.
const (
	CandidateStatusPending  CandidateStatus = "pending"
	CandidateStatusAccepted CandidateStatus = "accepted"
	CandidateStatusRejected CandidateStatus = "rejected"
)

// Candidate transition errors
var (
	// ErrCandidateRejected is returned when accepting or editing a
	// candidate that has already been rejected.
	ErrCandidateRejected = errors.New("candidate has been rejected")

	// ErrCandidateNotPending is returned when rejecting a candidate that
	// has already left the pending state.
	ErrCandidateNotPending = errors.New("candidate is not pending")

	// ErrCandidateFrontEmpty is returned when an edit would leave the
	// candidate's front text empty after trimming.
	ErrCandidateFrontEmpty = errors.New("candidate front cannot be empty")

	// ErrCandidateBackEmpty is returned when an edit would leave the
	// candidate's back text empty after trimming.
	ErrCandidateBackEmpty = errors.New("candidate back cannot be empty")
)

// Candidate is an ephemeral flashcard awaiting a triage decision. It
// lives only inside a staging batch and is never persisted directly.
type Candidate struct {
	LocalID uuid.UUID       `json:"local_id"`
	Front   string          `json:"front"`
	Back    string          `json:"back"`
	Status  CandidateStatus `json:"status"`
}

// NewCandidate creates a pending candidate from the given content.
func NewCandidate(content CardContent) *Candidate {
	return &Candidate{
		LocalID: uuid.New(),
		Front:   content.Front,
		Back:    content.Back,
		Status:  CandidateStatusPending,
	}
}

// Accept marks the candidate as accepted, optionally replacing its text.
// Accepting is allowed from pending and from accepted (re-edit), never
// from rejected. A nil front or back leaves that side unchanged.
func (c *Candidate) Accept(front, back *string) error {
	if c.Status == CandidateStatusRejected {
		return ErrCandidateRejected
	}

	newFront := c.Front
	if front != nil {
		newFront = strings.TrimSpace(*front)
	}
	newBack := c.Back
	if back != nil {
		newBack = strings.TrimSpace(*back)
	}

	if newFront == "" {
		return ErrCandidateFrontEmpty
	}
	if newBack == "" {
		return ErrCandidateBackEmpty
	}

	c.Front = newFront
	c.Back = newBack
	c.Status = CandidateStatusAccepted
	return nil
}

// Reject marks the candidate as rejected. Only pending candidates can be
// rejected; the transition is terminal.
func (c *Candidate) Reject() error {
	if c.Status != CandidateStatusPending {
		return ErrCandidateNotPending
	}
	c.Status = CandidateStatusRejected
	return nil
}

// Content returns the candidate's current {front, back} pair.
func (c *Candidate) Content() CardContent {
	return CardContent{Front: c.Front, Back: c.Back}
}
