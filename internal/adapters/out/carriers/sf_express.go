package carriers

import (
	"context"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/ports"
)

// SFExpressAdapter prices and books shipments under SF Express rules:
// premium base rates, the highest per-kilogram surcharge and the shortest
// transit times of the registered carriers.
type SFExpressAdapter struct{}

// NewSFExpressAdapter creates the SF Express adapter.
func NewSFExpressAdapter() SFExpressAdapter {
	return SFExpressAdapter{}
}

// Metadata describes SF Express. All three service tiers are advertised.
func (a SFExpressAdapter) Metadata() ports.CarrierMetadata {
	return ports.CarrierMetadata{
		Code:          "SF",
		Name:          "SF Express (顺丰速运)",
		ServiceLevels: []order.ServiceLevel{order.Express, order.Standard, order.Economy},
		Rating:        4.8,
		PriceTier:     "¥¥¥",
	}
}

// GetQuote prices the shipment. The price is a tier base rate plus 3.2 per
// normalized kilogram.
func (a SFExpressAdapter) GetQuote(ctx context.Context, request ports.QuoteRequest) (ports.Quote, error) {
	if err := request.Validate(); err != nil {
		return ports.Quote{}, err
	}

	var base float64
	switch request.ServiceLevel {
	case order.Express:
		base = 35
	case order.Standard:
		base = 28
	default:
		base = 20
	}

	price, err := kernel.NewMoney(base+request.Weight.Kilograms()*3.2, kernel.DefaultCurrency)
	if err != nil {
		return ports.Quote{}, err
	}

	var days int
	switch request.ServiceLevel {
	case order.Express:
		days = 1
	case order.Standard:
		days = 2
	default:
		days = 4
	}

	return ports.Quote{
		CarrierCode:   "SF",
		Price:         price,
		EstimatedDays: days,
		ServiceLevel:  request.ServiceLevel,
	}, nil
}

// Book registers the shipment and returns an SF-prefixed tracking number.
func (a SFExpressAdapter) Book(ctx context.Context, request ports.BookingRequest) (ports.Booking, error) {
	if err := request.Validate(); err != nil {
		return ports.Booking{}, err
	}

	return ports.Booking{
		CarrierCode:    "SF",
		TrackingNumber: trackingNumber("SF"),
		BookedAt:       time.Now().UTC(),
	}, nil
}
