package queries

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/domain/services/routing"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrCompareRoutesQueryIsNotConstructed = errors.New(
		"CompareRoutesQuery must be created via NewCompareRoutesQuery constructor",
	)
)

// CompareRoutesQuery plans one shipment under every routing objective so
// the caller can trade speed against cost.
//
// Example:
//
//	query, err := NewCompareRoutesQuery(shanghai, beijing, weight, order.Express)
//	if err != nil {
//	    return err
//	}
//
//	routes, err := handler.Handle(ctx, query)
type CompareRoutesQuery struct { //nolint:recvcheck //using for validation
	request routing.Request

	guard guard.ConstructorGuard
}

// NewCompareRoutesQuery creates a route comparison query.
func NewCompareRoutesQuery(
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	weight kernel.Weight,
	serviceLevel order.ServiceLevel,
) (CompareRoutesQuery, error) {
	request, err := routing.NewRequest(origin, destination, weight, serviceLevel)
	if err != nil {
		return CompareRoutesQuery{}, err
	}

	return CompareRoutesQuery{
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCompareRoutesQueryIsNotConstructed if validation fails.
func (q CompareRoutesQuery) Validate() error {
	return q.guard.Validate(ErrCompareRoutesQueryIsNotConstructed)
}

// Request returns the routing request to plan.
func (q CompareRoutesQuery) Request() routing.Request {
	return q.request
}

// CompareRoutesQueryResponse is one planned route, ready for display.
type CompareRoutesQueryResponse struct {
	// Strategy names the objective that produced the route.
	Strategy string
	// DistanceKm is the travelled distance, detour included.
	DistanceKm float64
	// Duration renders the travel time as HH:MM:SS.
	Duration string
	// Cost is the estimated transport cost.
	Cost kernel.Money
	// RecommendedCarrier is the carrier code suggested for the route.
	RecommendedCarrier string
	// Path is the synthesized route geometry, origin to destination.
	Path []kernel.GeoPoint
}
