package queries

import (
	"context"

	"freightdesk/internal/core/domain/services/routing"
)

// CompareRoutesQueryHandler plans a shipment with every registered
// routing strategy and shapes the routes for presentation.
type CompareRoutesQueryHandler struct {
	engine *routing.Engine
}

// NewCompareRoutesQueryHandler creates a handler over the given engine.
func NewCompareRoutesQueryHandler(engine *routing.Engine) CompareRoutesQueryHandler {
	return CompareRoutesQueryHandler{engine: engine}
}

// Handle returns one route per registered strategy, in registration order.
func (h CompareRoutesQueryHandler) Handle(
	_ context.Context,
	query CompareRoutesQuery,
) ([]CompareRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes, err := h.engine.Compare(query.Request())
	if err != nil {
		return nil, err
	}

	responses := make([]CompareRoutesQueryResponse, 0, len(routes))
	for _, route := range routes {
		responses = append(responses, CompareRoutesQueryResponse{
			Strategy:           route.Mode.String(),
			DistanceKm:         route.DistanceKm,
			Duration:           route.DurationText(),
			Cost:               route.Cost,
			RecommendedCarrier: route.RecommendedCarrier,
			Path:               route.Path,
		})
	}

	return responses, nil
}
