package queries

import (
	"errors"

	"freightdesk/internal/adapters/out/memory/orderindex"
	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery projects the order book for one caller. The role and
// user identity travel with the query because visibility is decided per
// caller: drivers see only their assignments, viewers only their own
// orders, dispatchers and admins everything.
//
// Example:
//
//	query, err := NewListOrdersQuery(orderindex.Filters{
//	    Statuses: []order.Status{order.Created, order.Confirmed},
//	    Search:   "wang",
//	}, auth.Dispatcher, userID)
//	if err != nil {
//	    return err
//	}
//
//	rows, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	filters  orderindex.Filters
	role     auth.Role
	userID   kernel.UUID
	ordering *orderindex.Sort

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the caller's slice of the order book.
// Filters may be zero; the role and user ID are mandatory.
func NewListOrdersQuery(
	filters orderindex.Filters,
	role auth.Role,
	userID kernel.UUID,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRole(role),
		query.setUserID(userID),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	query.filters = filters

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// WithOrdering returns a copy of the query carrying an explicit ordering.
// A query without one falls back to the index's current sort.
func (q ListOrdersQuery) WithOrdering(ordering orderindex.Sort) ListOrdersQuery {
	q.ordering = &ordering
	return q
}

// Filters returns the requested projection constraints.
func (q ListOrdersQuery) Filters() orderindex.Filters {
	return q.filters
}

// Ordering returns the explicit ordering, or nil when the caller left
// the choice to the index.
func (q ListOrdersQuery) Ordering() *orderindex.Sort {
	return q.ordering
}

// Role returns the caller's role.
func (q ListOrdersQuery) Role() auth.Role {
	return q.role
}

// UserID returns the caller's identity.
func (q ListOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *ListOrdersQuery) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role

	return nil
}

func (q *ListOrdersQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID

	return nil
}
