package domain

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestNewCandidate(t *testing.T) {
	t.Parallel()
	c := NewCandidate(CardContent{Front: "Q1", Back: "A1"})

	if c.LocalID == uuid.Nil {
		t.Error("Expected non-nil local ID")
	}
	if c.Status != CandidateStatusPending {
		t.Errorf("Expected status %s, got %s", CandidateStatusPending, c.Status)
	}
	if c.Front != "Q1" || c.Back != "A1" {
		t.Errorf("Expected content Q1/A1, got %q/%q", c.Front, c.Back)
	}
}

func TestCandidateAccept(t *testing.T) {
	t.Parallel()

	// Plain accept keeps the original text.
	c := NewCandidate(CardContent{Front: "Q1", Back: "A1"})
	if err := c.Accept(nil, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Status != CandidateStatusAccepted {
		t.Errorf("Expected status %s, got %s", CandidateStatusAccepted, c.Status)
	}

	// Accept with an edit replaces the provided side only.
	c = NewCandidate(CardContent{Front: "Q1", Back: "A1"})
	if err := c.Accept(strPtr("New Q"), nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Front != "New Q" || c.Back != "A1" {
		t.Errorf("Expected New Q/A1, got %q/%q", c.Front, c.Back)
	}

	// Re-editing an accepted candidate is allowed; latest edit wins.
	if err := c.Accept(strPtr("Newer Q"), strPtr("Newer A")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Front != "Newer Q" || c.Back != "Newer A" {
		t.Errorf("Expected Newer Q/Newer A, got %q/%q", c.Front, c.Back)
	}
	if c.Status != CandidateStatusAccepted {
		t.Errorf("Expected status to remain %s, got %s", CandidateStatusAccepted, c.Status)
	}

	// An edit may not blank out a side.
	if err := c.Accept(strPtr("   "), nil); err != ErrCandidateFrontEmpty {
		t.Errorf("Expected error %v, got %v", ErrCandidateFrontEmpty, err)
	}
	if err := c.Accept(nil, strPtr("")); err != ErrCandidateBackEmpty {
		t.Errorf("Expected error %v, got %v", ErrCandidateBackEmpty, err)
	}
	// Failed edits leave the candidate untouched.
	if c.Front != "Newer Q" || c.Back != "Newer A" {
		t.Errorf("Expected content unchanged after failed edit, got %q/%q", c.Front, c.Back)
	}

	// Rejected is terminal: accept is refused.
	c = NewCandidate(CardContent{Front: "Q1", Back: "A1"})
	if err := c.Reject(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := c.Accept(nil, nil); err != ErrCandidateRejected {
		t.Errorf("Expected error %v, got %v", ErrCandidateRejected, err)
	}
}

func TestCandidateReject(t *testing.T) {
	t.Parallel()

	c := NewCandidate(CardContent{Front: "Q1", Back: "A1"})
	if err := c.Reject(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Status != CandidateStatusRejected {
		t.Errorf("Expected status %s, got %s", CandidateStatusRejected, c.Status)
	}

	// Rejecting twice fails.
	if err := c.Reject(); err != ErrCandidateNotPending {
		t.Errorf("Expected error %v, got %v", ErrCandidateNotPending, err)
	}

	// Accepted candidates can no longer be rejected.
	c = NewCandidate(CardContent{Front: "Q1", Back: "A1"})
	if err := c.Accept(nil, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := c.Reject(); err != ErrCandidateNotPending {
		t.Errorf("Expected error %v, got %v", ErrCandidateNotPending, err)
	}
}
