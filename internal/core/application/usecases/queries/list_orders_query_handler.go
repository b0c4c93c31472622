package queries

import (
	"context"

	"freightdesk/internal/adapters/out/memory/orderindex"
)

// ListOrdersQueryHandler answers order book queries from the in-memory
// index instead of the database: the index is kept current by the command
// side after every commit, so reads never touch storage.
type ListOrdersQueryHandler struct {
	index *orderindex.Index
}

// NewListOrdersQueryHandler creates a handler backed by the given index.
func NewListOrdersQueryHandler(index *orderindex.Index) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{index: index}
}

// Handle returns the rows visible to the caller, filtered and sorted.
// A query carrying an explicit ordering is answered under it without
// touching the index's own sort; otherwise the index's current sort
// applies. Visibility is applied before any filter and cannot be widened
// by filter values.
func (h ListOrdersQueryHandler) Handle(
	_ context.Context,
	query ListOrdersQuery,
) ([]orderindex.Summary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if ordering := query.Ordering(); ordering != nil {
		return h.index.FilteredSortedBy(query.Filters(), query.Role(), query.UserID(), *ordering), nil
	}

	return h.index.FilteredSorted(query.Filters(), query.Role(), query.UserID()), nil
}
