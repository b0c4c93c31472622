package commands

import (
	"context"
	"time"

	"freightdesk/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Issues the human order number, creates the aggregate in Created status
// and projects it into the order index after commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequence, index)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and visible on the order board
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequence   *order.NumberSequence
	projection OrderProjection
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence, the shared
// order number sequence and the order index projection.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sequence *order.NumberSequence,
	projection OrderProjection,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
		projection: projection,
	}
}

// Handle processes the order creation command.
// Creates the order in Created status and persists it transactionally;
// the projection is updated only after a successful commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		h.sequence.Next(time.Now().UTC()),
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Region(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Priority(),
		cmd.ServiceLevel(),
		cmd.Amount(),
		cmd.Items(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.projection.Upsert(aggregate)

	return nil
}
