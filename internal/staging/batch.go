// Package staging holds the transient candidate arena between generation
// and commit. A Batch is scoped to one actor's one in-progress generation
// and is discarded when a new batch is generated or the batch is
// abandoned; nothing in this package touches durable storage.
package staging

import (
	"errors"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/google/uuid"
)

// ErrCandidateNotFound is returned when a local ID does not belong to
// the batch.
var ErrCandidateNotFound = errors.New("candidate not found in batch")

// Batch is a per-actor set of candidates keyed by local ID. It is a
// plain value passed explicitly through the calling code; it is not
// shared across actors or requests, so it needs no locking.
type Batch struct {
	ownerID    uuid.UUID
	candidates []*domain.Candidate
	byID       map[uuid.UUID]*domain.Candidate
}

// NewBatch creates a batch of pending candidates from the parsed
// provider output, preserving its order.
func NewBatch(ownerID uuid.UUID, contents []domain.CardContent) *Batch {
	batch := &Batch{
		ownerID:    ownerID,
		candidates: make([]*domain.Candidate, 0, len(contents)),
		byID:       make(map[uuid.UUID]*domain.Candidate, len(contents)),
	}
	for _, content := range contents {
		candidate := domain.NewCandidate(content)
		batch.candidates = append(batch.candidates, candidate)
		batch.byID[candidate.LocalID] = candidate
	}
	return batch
}

// OwnerID returns the identity of the actor the batch belongs to.
func (b *Batch) OwnerID() uuid.UUID {
	return b.ownerID
}

// Len returns the number of candidates in the batch.
func (b *Batch) Len() int {
	return len(b.candidates)
}

// Candidates returns the batch's candidates in original order.
func (b *Batch) Candidates() []*domain.Candidate {
	return b.candidates
}

// Get returns the candidate with the given local ID.
func (b *Batch) Get(localID uuid.UUID) (*domain.Candidate, error) {
	candidate, ok := b.byID[localID]
	if !ok {
		return nil, ErrCandidateNotFound
	}
	return candidate, nil
}

// Accept marks a candidate accepted, optionally replacing its front or
// back text. Accepting an already-accepted candidate re-edits it.
func (b *Batch) Accept(localID uuid.UUID, front, back *string) error {
	candidate, err := b.Get(localID)
	if err != nil {
		return err
	}
	return candidate.Accept(front, back)
}

// Reject marks a pending candidate rejected. The transition is terminal.
func (b *Batch) Reject(localID uuid.UUID) error {
	candidate, err := b.Get(localID)
	if err != nil {
		return err
	}
	return candidate.Reject()
}

// SnapshotAccepted returns the current {front, back} pairs of all
// accepted candidates, in original batch order. Pending and rejected
// candidates are excluded.
func (b *Batch) SnapshotAccepted() []domain.CardContent {
	accepted := make([]domain.CardContent, 0, len(b.candidates))
	for _, candidate := range b.candidates {
		if candidate.Status == domain.CandidateStatusAccepted {
			accepted = append(accepted, candidate.Content())
		}
	}
	return accepted
}
