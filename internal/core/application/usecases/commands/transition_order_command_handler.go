package commands

import (
	"context"
)

// TransitionOrderCommandHandler applies a lifecycle action to an order.
// The aggregate decides legality: the target status must be reachable from
// the current one and the acting role must be allowed to take the action.
// Concurrent mutations of the same order are rejected up front through the
// shared in-flight registry.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	inflight   *InflightRegistry
	projection OrderProjection
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle
// transitions.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	inflight *InflightRegistry,
	projection OrderProjection,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		inflight:   inflight,
		projection: projection,
	}
}

// Handle processes the transition command.
// Returns ErrOrderMutationInProgress when the order is already being
// mutated, order.ErrActionNotAvailable when the action is illegal for the
// order's status or forbidden for the role.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	if err = aggregate.ApplyAction(cmd.Action(), cmd.Role()); err != nil {
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
