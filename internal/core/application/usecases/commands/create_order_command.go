package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new shipment order.
// Encapsulates the customer reference, routing addresses, handling options
// and the order's monetary amount and contents.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID,
//	    "Wang Wei", "East China", origin, destination,
//	    order.Urgent, order.Express, amount, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	customerName string
	region       string
	origin       order.Address
	destination  order.Address
	priority     order.Priority
	serviceLevel order.ServiceLevel
	amount       kernel.Money
	items        []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Every value object parameter must already be constructed; violations are
// joined into a single error.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	region string,
	origin order.Address,
	destination order.Address,
	priority order.Priority,
	serviceLevel order.ServiceLevel,
	amount kernel.Money,
	items []order.Item,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setRegion(region),
		orderCommand.setOrigin(origin),
		orderCommand.setDestination(destination),
		orderCommand.setPriority(priority),
		orderCommand.setServiceLevel(serviceLevel),
		orderCommand.setAmount(amount),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer reference.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Region returns the operating region of the order.
func (c CreateOrderCommand) Region() string {
	return c.region
}

// Origin returns the pickup address.
func (c CreateOrderCommand) Origin() order.Address {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateOrderCommand) Destination() order.Address {
	return c.destination
}

// Priority returns the handling priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// ServiceLevel returns the shipping tier.
func (c CreateOrderCommand) ServiceLevel() order.ServiceLevel {
	return c.serviceLevel
}

// Amount returns the order's monetary amount.
func (c CreateOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Items returns the order contents.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setRegion(region string) error {
	if region == "" {
		return errs.NewValueIsRequiredError("region")
	}

	c.region = region
	return nil
}

func (c *CreateOrderCommand) setOrigin(origin order.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setDestination(destination order.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setServiceLevel(serviceLevel order.ServiceLevel) error {
	if err := serviceLevel.Validate(); err != nil {
		return err
	}

	c.serviceLevel = serviceLevel
	return nil
}

func (c *CreateOrderCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
