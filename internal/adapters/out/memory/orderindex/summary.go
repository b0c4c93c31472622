package orderindex

import (
	"time"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
)

// Summary is the read model one index row holds: everything the order
// board displays, nothing the aggregate needs for its invariants. Rows are
// immutable; a mutation replaces the whole row through Upsert.
type Summary struct {
	ID               kernel.UUID
	OrderNumber      string
	CustomerID       kernel.UUID
	CustomerName     string
	AssignedDriverID *kernel.UUID
	Region           string
	Status           order.Status
	Priority         order.Priority
	ServiceLevel     order.ServiceLevel
	Amount           kernel.Money
	CarrierCode      string
	TrackingNumber   string
	CreatedAt        time.Time
}

// FromOrder projects an order aggregate into its index row.
func FromOrder(aggregate *order.Order) Summary {
	var driverID *kernel.UUID
	if assigned := aggregate.AssignedDriver(); assigned != nil {
		copied := *assigned
		driverID = &copied
	}

	return Summary{
		ID:               aggregate.ID(),
		OrderNumber:      aggregate.OrderNumber(),
		CustomerID:       aggregate.CustomerID(),
		CustomerName:     aggregate.CustomerName(),
		AssignedDriverID: driverID,
		Region:           aggregate.Region(),
		Status:           aggregate.Status(),
		Priority:         aggregate.Priority(),
		ServiceLevel:     aggregate.ServiceLevel(),
		Amount:           aggregate.Amount(),
		CarrierCode:      aggregate.CarrierCode(),
		TrackingNumber:   aggregate.TrackingNumber(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}
