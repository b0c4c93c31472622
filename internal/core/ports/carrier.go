package ports

import (
	"context"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/pkg/errs"
)

// CarrierMetadata describes a carrier for listing and selection. The
// advertised service levels are informational; pricing still answers every
// tier so a quote comparison never has holes.
type CarrierMetadata struct {
	// Code is the short carrier identifier, e.g. "SF".
	Code string
	// Name is the full display name of the carrier.
	Name string
	// ServiceLevels lists the tiers the carrier advertises.
	ServiceLevels []order.ServiceLevel
	// Rating is the aggregate customer rating on a 5-point scale.
	Rating float64
	// PriceTier is a coarse relative price indicator, e.g. "¥¥".
	PriceTier string
}

// QuoteRequest describes one shipment to be priced by a carrier.
type QuoteRequest struct {
	Origin       order.Address
	Destination  order.Address
	Weight       kernel.Weight
	ServiceLevel order.ServiceLevel
}

// Validate checks that every field of the request is a constructed value.
func (r QuoteRequest) Validate() error {
	if err := r.Origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	if err := r.Destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}
	if err := r.Weight.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	if err := r.ServiceLevel.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("serviceLevel", err)
	}

	return nil
}

// Quote is one carrier's price answer for a shipment. Quotes are transient:
// produced per request, never persisted.
type Quote struct {
	CarrierCode   string
	Price         kernel.Money
	EstimatedDays int
	ServiceLevel  order.ServiceLevel
}

// Contact identifies one party of a booking.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Validate checks that the contact carries at least a name.
func (c Contact) Validate() error {
	if c.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	return nil
}

// BookingRequest describes a shipment to be booked with a carrier.
type BookingRequest struct {
	Origin       order.Address
	Destination  order.Address
	Weight       kernel.Weight
	ServiceLevel order.ServiceLevel
	Sender       Contact
	Recipient    Contact
}

// Validate checks that every field of the request is a constructed value.
func (r BookingRequest) Validate() error {
	quote := QuoteRequest{
		Origin:       r.Origin,
		Destination:  r.Destination,
		Weight:       r.Weight,
		ServiceLevel: r.ServiceLevel,
	}
	if err := quote.Validate(); err != nil {
		return err
	}

	if err := r.Sender.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	if err := r.Recipient.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("recipient", err)
	}

	return nil
}

// Booking is a carrier's confirmation of a booked shipment.
type Booking struct {
	CarrierCode    string
	TrackingNumber string
	BookedAt       time.Time
}

// CarrierAdapter is the uniform contract over heterogeneous carrier
// pricing and booking logic. Implementations are stateless and safe for
// concurrent use.
type CarrierAdapter interface {
	// Metadata describes the carrier for listing.
	Metadata() CarrierMetadata

	// GetQuote prices the shipment according to the carrier's own rules.
	GetQuote(ctx context.Context, request QuoteRequest) (Quote, error)

	// Book registers the shipment with the carrier and returns the
	// confirmation with a carrier-prefixed tracking number.
	Book(ctx context.Context, request BookingRequest) (Booking, error)
}

// CarrierFactory resolves carrier codes to adapter instances.
type CarrierFactory interface {
	// Create resolves a carrier code to its adapter. An unknown code
	// yields a validation error.
	Create(code string) (CarrierAdapter, error)

	// ListAll returns every registered adapter in a fixed order. The
	// order is significant: quote aggregation breaks price ties by it.
	ListAll() []CarrierAdapter
}
