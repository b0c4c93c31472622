package queries

import (
	"context"

	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/ports"
)

// ListShipmentsQueryHandler reads in-transit orders straight from
// storage. Shipped is the only status where a carrier booking is live,
// so the repository's status scan is the whole query.
type ListShipmentsQueryHandler struct {
	repository ports.OrderRepository
}

// NewListShipmentsQueryHandler creates a handler over the given
// repository.
func NewListShipmentsQueryHandler(repository ports.OrderRepository) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{repository: repository}
}

// Handle returns every shipment currently in transit.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipped, err := h.repository.GetAllInStatus(ctx, order.Shipped)
	if err != nil {
		return nil, err
	}

	shipments := make([]ListShipmentsQueryResponse, len(shipped))
	for i, aggregate := range shipped {
		shipments[i] = shipmentFromOrder(aggregate)
	}

	return shipments, nil
}

func shipmentFromOrder(aggregate *order.Order) ListShipmentsQueryResponse {
	response := ListShipmentsQueryResponse{
		ID:             aggregate.ID(),
		OrderNumber:    aggregate.OrderNumber(),
		CustomerName:   aggregate.CustomerName(),
		Region:         aggregate.Region(),
		Priority:       aggregate.Priority(),
		ServiceLevel:   aggregate.ServiceLevel(),
		CarrierCode:    aggregate.CarrierCode(),
		TrackingNumber: aggregate.TrackingNumber(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
	if assigned := aggregate.AssignedDriver(); assigned != nil {
		copied := *assigned
		response.AssignedDriverID = &copied
	}

	return response
}
