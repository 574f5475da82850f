package generation

import (
	"context"

	"github.com/google/uuid"
)

// Generator defines the interface for the outbound call to the external
// language-model provider. Implementations issue exactly one request
// under a hard deadline and return the provider's raw textual payload;
// parsing and validation happen separately in ParseCandidates.
type Generator interface {
	// Generate sends the source text to the provider and returns the raw
	// payload. The owner ID is used for audit logging only and is never
	// forwarded upstream. Failures are one of ErrUpstreamTimeout,
	// ErrUpstreamService (via UpstreamServiceError) or
	// ErrUpstreamUnavailable. No automatic retry is performed; the
	// caller may resubmit.
	Generate(ctx context.Context, text string, ownerID uuid.UUID) (string, error)
}
