package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

var (
	ErrBookCarrierCommandIsNotConstructed = errors.New(
		"BookCarrierCommand must be created via NewBookCarrierCommand constructor",
	)
)

// BookCarrierCommand represents a request to book a confirmed order with a
// carrier. The carrier code is resolved through the factory at handling
// time; the resulting tracking number is attached to the order.
type BookCarrierCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	carrierCode string
	sender      ports.Contact
	recipient   ports.Contact

	guard guard.ConstructorGuard
}

// NewBookCarrierCommand creates a carrier booking command.
func NewBookCarrierCommand(
	orderID kernel.UUID,
	carrierCode string,
	sender ports.Contact,
	recipient ports.Contact,
) (BookCarrierCommand, error) {
	command := BookCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCarrierCode(carrierCode),
		command.setSender(sender),
		command.setRecipient(recipient),
	); err != nil {
		return BookCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookCarrierCommandIsNotConstructed if validation fails.
func (c BookCarrierCommand) Validate() error {
	return c.guard.Validate(ErrBookCarrierCommandIsNotConstructed)
}

// OrderID returns the order to book.
func (c BookCarrierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierCode returns the carrier to book with.
func (c BookCarrierCommand) CarrierCode() string {
	return c.carrierCode
}

// Sender returns the sending party of the shipment.
func (c BookCarrierCommand) Sender() ports.Contact {
	return c.sender
}

// Recipient returns the receiving party of the shipment.
func (c BookCarrierCommand) Recipient() ports.Contact {
	return c.recipient
}

func (c *BookCarrierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *BookCarrierCommand) setCarrierCode(carrierCode string) error {
	if carrierCode == "" {
		return errs.NewValueIsRequiredError("carrierCode")
	}

	c.carrierCode = carrierCode
	return nil
}

func (c *BookCarrierCommand) setSender(sender ports.Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *BookCarrierCommand) setRecipient(recipient ports.Contact) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}
