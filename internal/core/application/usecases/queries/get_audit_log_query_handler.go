package queries

import (
	"context"

	"freightdesk/internal/pkg/audit"
)

// GetAuditLogQueryHandler reads the in-memory audit ring. Entries come
// back newest first, so applying a limit keeps the most recent operations.
type GetAuditLogQueryHandler struct {
	log *audit.Log
}

// NewGetAuditLogQueryHandler creates a handler over the given audit log.
func NewGetAuditLogQueryHandler(log *audit.Log) GetAuditLogQueryHandler {
	return GetAuditLogQueryHandler{log: log}
}

// Handle returns audit entries newest first, trimmed to the query's limit
// when one is set.
func (h GetAuditLogQueryHandler) Handle(
	_ context.Context,
	query GetAuditLogQuery,
) ([]audit.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := h.log.Entries()
	if limit := query.Limit(); limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	return entries, nil
}
