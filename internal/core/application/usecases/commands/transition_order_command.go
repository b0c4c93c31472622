package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move an order through its
// lifecycle: confirm, ship, deliver or cancel. The acting role travels with
// the command because the state machine gates every action on it.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Cancel,
//	    auth.Dispatcher, "client requested")
//	if err != nil {
//	    return err
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // illegal transition, forbidden role or concurrent mutation
//	    return err
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  order.Action
	role    auth.Role
	reason  string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a lifecycle transition command.
// The reason is optional and only recorded for traceability; it does not
// influence the transition itself.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	action order.Action,
	role auth.Role,
	reason string,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAction(action),
		command.setRole(role),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	command.reason = reason

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the lifecycle action to apply.
func (c TransitionOrderCommand) Action() order.Action {
	return c.action
}

// Role returns the role acting on the order.
func (c TransitionOrderCommand) Role() auth.Role {
	return c.role
}

// Reason returns the optional free-text motivation, e.g. a cancel reason.
func (c TransitionOrderCommand) Reason() string {
	return c.reason
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *TransitionOrderCommand) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
