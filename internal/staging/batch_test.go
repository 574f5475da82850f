package staging

import (
	"testing"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestBatch(t *testing.T) *Batch {
	t.Helper()
	return NewBatch(uuid.New(), []domain.CardContent{
		{Front: "Q1", Back: "A1"},
		{Front: "Q2", Back: "A2"},
		{Front: "Q3", Back: "A3"},
	})
}

func TestNewBatch(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	batch := NewBatch(ownerID, []domain.CardContent{{Front: "Q1", Back: "A1"}})

	assert.Equal(t, ownerID, batch.OwnerID())
	require.Equal(t, 1, batch.Len())
	assert.Equal(t, domain.CandidateStatusPending, batch.Candidates()[0].Status)
}

func TestBatchAcceptAndReject(t *testing.T) {
	t.Parallel()
	batch := newTestBatch(t)
	candidates := batch.Candidates()

	require.NoError(t, batch.Accept(candidates[0].LocalID, strPtr("New Q"), nil))
	require.NoError(t, batch.Reject(candidates[1].LocalID))

	assert.Equal(t, domain.CandidateStatusAccepted, candidates[0].Status)
	assert.Equal(t, "New Q", candidates[0].Front)
	assert.Equal(t, domain.CandidateStatusRejected, candidates[1].Status)
	assert.Equal(t, domain.CandidateStatusPending, candidates[2].Status)

	// Unknown local IDs are reported as such.
	assert.ErrorIs(t, batch.Accept(uuid.New(), nil, nil), ErrCandidateNotFound)
	assert.ErrorIs(t, batch.Reject(uuid.New()), ErrCandidateNotFound)

	// Transition rules propagate from the candidate.
	assert.ErrorIs(t, batch.Reject(candidates[0].LocalID), domain.ErrCandidateNotPending)
	assert.ErrorIs(t, batch.Accept(candidates[1].LocalID, nil, nil), domain.ErrCandidateRejected)
}

func TestSnapshotAccepted(t *testing.T) {
	t.Parallel()
	batch := newTestBatch(t)
	candidates := batch.Candidates()

	// Nothing accepted yet.
	assert.Empty(t, batch.SnapshotAccepted())

	// Accept out of order; snapshot preserves original batch order.
	require.NoError(t, batch.Accept(candidates[2].LocalID, nil, nil))
	require.NoError(t, batch.Accept(candidates[0].LocalID, strPtr("Edited Q1"), strPtr("Edited A1")))
	require.NoError(t, batch.Reject(candidates[1].LocalID))

	snapshot := batch.SnapshotAccepted()
	require.Len(t, snapshot, 2)
	assert.Equal(t, domain.CardContent{Front: "Edited Q1", Back: "Edited A1"}, snapshot[0])
	assert.Equal(t, domain.CardContent{Front: "Q3", Back: "A3"}, snapshot[1])

	// Re-editing after a snapshot is reflected in the next snapshot.
	require.NoError(t, batch.Accept(candidates[0].LocalID, strPtr("Final Q1"), nil))
	snapshot = batch.SnapshotAccepted()
	assert.Equal(t, "Final Q1", snapshot[0].Front)
	assert.Equal(t, "Edited A1", snapshot[0].Back)
}
