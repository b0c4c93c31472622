package queries

import (
	"errors"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ListShipmentsQuery asks for every order currently in transit: booked
// with a carrier, shipped, not yet delivered. The tracking view feeds
// off it.
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a shipments query.
func NewListShipmentsQuery() ListShipmentsQuery {
	return ListShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// ListShipmentsQueryResponse is one in-transit shipment.
type ListShipmentsQueryResponse struct {
	ID               kernel.UUID
	OrderNumber      string
	CustomerName     string
	AssignedDriverID *kernel.UUID
	Region           string
	Priority         order.Priority
	ServiceLevel     order.ServiceLevel
	CarrierCode      string
	TrackingNumber   string
	UpdatedAt        time.Time
}
