package queries

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrGetQuotesQueryIsNotConstructed = errors.New(
		"GetQuotesQuery must be created via NewGetQuotesQuery constructor",
	)
)

// GetQuotesQuery asks every registered carrier to price one shipment.
//
// Example:
//
//	query, err := NewGetQuotesQuery(origin, destination, weight, order.Express)
//	if err != nil {
//	    return err
//	}
//
//	comparison, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("recommended: %s (%s)\n",
//	    comparison.Recommended.CarrierCode, comparison.Reason)
type GetQuotesQuery struct { //nolint:recvcheck //using for validation
	origin       order.Address
	destination  order.Address
	weight       kernel.Weight
	serviceLevel order.ServiceLevel

	guard guard.ConstructorGuard
}

// NewGetQuotesQuery creates a quote comparison query for one shipment.
func NewGetQuotesQuery(
	origin order.Address,
	destination order.Address,
	weight kernel.Weight,
	serviceLevel order.ServiceLevel,
) (GetQuotesQuery, error) {
	query := GetQuotesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrigin(origin),
		query.setDestination(destination),
		query.setWeight(weight),
		query.setServiceLevel(serviceLevel),
	); err != nil {
		return GetQuotesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQuotesQueryIsNotConstructed if validation fails.
func (q GetQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesQueryIsNotConstructed)
}

// Request converts the query into the carrier port's quote request.
func (q GetQuotesQuery) Request() ports.QuoteRequest {
	return ports.QuoteRequest{
		Origin:       q.origin,
		Destination:  q.destination,
		Weight:       q.weight,
		ServiceLevel: q.serviceLevel,
	}
}

func (q *GetQuotesQuery) setOrigin(origin order.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	q.origin = origin

	return nil
}

func (q *GetQuotesQuery) setDestination(destination order.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	q.destination = destination

	return nil
}

func (q *GetQuotesQuery) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	q.weight = weight

	return nil
}

func (q *GetQuotesQuery) setServiceLevel(serviceLevel order.ServiceLevel) error {
	if err := serviceLevel.Validate(); err != nil {
		return err
	}

	q.serviceLevel = serviceLevel

	return nil
}

// GetQuotesQueryResponse is the aggregated comparison: every quote that
// arrived in time plus the recommendation.
type GetQuotesQueryResponse struct {
	// Quotes holds one entry per responding carrier, in registration order.
	Quotes []ports.Quote
	// Recommended is the cheapest quote. Price ties go to the carrier
	// registered first.
	Recommended ports.Quote
	// Reason explains the recommendation.
	Reason string
}
