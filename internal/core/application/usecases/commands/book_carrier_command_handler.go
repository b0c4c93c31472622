package commands

import (
	"context"

	"freightdesk/internal/core/ports"
)

// BookCarrierCommandHandler books a confirmed order with a carrier.
// Resolves the adapter through the factory, registers the shipment and
// attaches the carrier code and tracking number to the order. Only orders
// in Confirmed status accept a booking; the aggregate enforces it.
type BookCarrierCommandHandler struct {
	uowFactory OrderUoWFactory
	carriers   ports.CarrierFactory
	inflight   *InflightRegistry
	projection OrderProjection
}

// NewBookCarrierCommandHandler creates a handler for carrier bookings.
func NewBookCarrierCommandHandler(
	uowFactory OrderUoWFactory,
	carriers ports.CarrierFactory,
	inflight *InflightRegistry,
	projection OrderProjection,
) BookCarrierCommandHandler {
	return BookCarrierCommandHandler{
		uowFactory: uowFactory,
		carriers:   carriers,
		inflight:   inflight,
		projection: projection,
	}
}

// Handle processes the booking command.
// The carrier booking runs before the transaction opens; if persisting the
// tracking number fails afterwards the booking is reported lost through
// the returned error.
func (h *BookCarrierCommandHandler) Handle(ctx context.Context, cmd BookCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	adapter, err := h.carriers.Create(cmd.CarrierCode())
	if err != nil {
		return err
	}

	if err = h.inflight.Acquire(cmd.OrderID()); err != nil {
		return err
	}
	defer h.inflight.Release(cmd.OrderID())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	weight, err := aggregate.TotalWeight()
	if err != nil {
		return err
	}

	booking, err := adapter.Book(ctx, ports.BookingRequest{
		Origin:       aggregate.Origin(),
		Destination:  aggregate.Destination(),
		Weight:       weight,
		ServiceLevel: aggregate.ServiceLevel(),
		Sender:       cmd.Sender(),
		Recipient:    cmd.Recipient(),
	})
	if err != nil {
		return err
	}

	if err = aggregate.AttachBooking(booking.CarrierCode, booking.TrackingNumber); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.projection.Upsert(aggregate)

	return nil
}
