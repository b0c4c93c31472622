package commands

import (
	"context"
)

// AssignDriverCommandHandler hands an order to a delivery driver. The
// aggregate rejects assignment on terminal orders.
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
	inflight   *InflightRegistry
	projection OrderProjection
}

// NewAssignDriverCommandHandler creates a handler for driver assignments.
func NewAssignDriverCommandHandler(
	uowFactory OrderUoWFactory,
	inflight *InflightRegistry,
	projection OrderProjection,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		inflight:   inflight,
		projection: projection,
	}
}

// Handle processes the assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.inflight.Acquire(cmd.OrderID()); err != nil {
		return err
	}
	defer h.inflight.Release(cmd.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = aggregate.AssignDriver(cmd.DriverID()); err != nil {
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
