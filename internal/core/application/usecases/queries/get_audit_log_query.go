package queries

import (
	"errors"

	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrGetAuditLogQueryIsNotConstructed = errors.New(
		"GetAuditLogQuery must be created via NewGetAuditLogQuery constructor",
	)
)

// GetAuditLogQuery retrieves recent audited operations, newest first.
type GetAuditLogQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetAuditLogQuery creates an audit log query. A zero limit returns
// every retained entry; a negative limit is rejected.
func NewGetAuditLogQuery(limit int) (GetAuditLogQuery, error) {
	if limit < 0 {
		return GetAuditLogQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetAuditLogQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAuditLogQueryIsNotConstructed if validation fails.
func (q GetAuditLogQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditLogQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to return, zero meaning all.
func (q GetAuditLogQuery) Limit() int {
	return q.limit
}
