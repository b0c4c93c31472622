package audit

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// WithCorrelationID returns a context carrying the correlation id of the
// surrounding audited operation.
func WithCorrelationID(ctx context.Context, correlationID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, correlationID)
}

// CorrelationIDFromContext extracts the correlation id placed by
// WithCorrelationID. The second return reports whether one was present.
func CorrelationIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	correlationID, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return correlationID, ok
}
