package order

import (
	"errors"
	"fmt"
	"time"

	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrActionNotAvailable is returned when a requested action is not in the
	// available-action set for the order's current status and the caller's role.
	// The check is local and synchronous: it rejects the request before any
	// mutation reaches a repository or transport.
	ErrActionNotAvailable = errors.New("action is not available for the current status and role")
)

// Order is the aggregate root for a shipment order. It owns the order's
// lifecycle from creation through confirmation, shipping and delivery
// (or cancellation), and enforces that every status change goes through
// the state machine with role authorization.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order number
//   - Status transitions follow the state machine adjacency
//   - Status changes additionally require an authorized role
//   - Monetary amount and addresses are validated value objects
//   - Can only be created through NewOrder or restored through RestoreOrder
type Order struct {
	id               kernel.UUID
	orderNumber      string
	customerID       kernel.UUID
	customerName     string
	assignedDriverID *kernel.UUID
	region           string
	origin           Address
	destination      Address
	priority         Priority
	serviceLevel     ServiceLevel
	amount           kernel.Money
	items            []Item
	status           Status
	carrierCode      string
	trackingNumber   string
	version          int
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation.
// This is the only way to create a valid new Order; persistence layers
// reconstruct existing orders through RestoreOrder instead.
//
// All value-object parameters must already be valid; the constructor
// re-validates them and joins every violation into a single error.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	customerName string,
	region string,
	origin Address,
	destination Address,
	priority Priority,
	serviceLevel ServiceLevel,
	amount kernel.Money,
	items []Item,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Created,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
		order.setCustomerName(customerName),
		order.setRegion(region),
		order.setOrigin(origin),
		order.setDestination(destination),
		order.setPriority(priority),
		order.setServiceLevel(serviceLevel),
		order.setAmount(amount),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts any valid status, an optional driver
// assignment, booking details and the stored version and timestamps.
// It is intended for repository use only.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	customerName string,
	region string,
	origin Address,
	destination Address,
	priority Priority,
	serviceLevel ServiceLevel,
	amount kernel.Money,
	items []Item,
	status Status,
	assignedDriverID *kernel.UUID,
	carrierCode string,
	trackingNumber string,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, orderNumber, customerID, customerName, region,
		origin, destination, priority, serviceLevel, amount, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if assignedDriverID != nil {
		if err = assignedDriverID.Validate(); err != nil {
			return nil, err
		}
		driverID := *assignedDriverID
		order.assignedDriverID = &driverID
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not greater than 0", version))
	}

	order.status = status
	order.carrierCode = carrierCode
	order.trackingNumber = trackingNumber
	order.version = version
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// AssignedDriver returns the assigned driver's identifier.
// Returns nil if no driver is assigned.
func (o *Order) AssignedDriver() *kernel.UUID {
	if o.assignedDriverID == nil {
		return nil
	}
	driverID := *o.assignedDriverID
	return &driverID
}

// Region returns the service region of the order.
func (o *Order) Region() string {
	return o.region
}

// Origin returns the pickup address.
func (o *Order) Origin() Address {
	return o.origin
}

// Destination returns the delivery address.
func (o *Order) Destination() Address {
	return o.destination
}

// Priority returns the handling priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// ServiceLevel returns the requested shipping tier.
func (o *Order) ServiceLevel() ServiceLevel {
	return o.serviceLevel
}

// Amount returns the order's monetary amount.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalWeight sums the items' weights, quantity included, normalized to
// kilograms. Carriers price the shipment by this value.
func (o *Order) TotalWeight() (kernel.Weight, error) {
	var kilograms float64
	for _, item := range o.items {
		kilograms += item.Weight().Kilograms() * float64(item.Quantity())
	}

	return kernel.NewWeight(kilograms, kernel.Kilograms)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CarrierCode returns the booked carrier's code, or "" if not booked.
func (o *Order) CarrierCode() string {
	return o.carrierCode
}

// TrackingNumber returns the carrier tracking number, or "" if not booked.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// Version returns the optimistic concurrency version of the aggregate.
// Repositories compare it on update and reject stale writes.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AvailableActions returns the actions the given role may perform on the
// order in its current status. Terminal orders yield an empty set for
// every role.
func (o *Order) AvailableActions(role auth.Role) []Action {
	return AvailableActions(o.status, role)
}

// ApplyAction performs an order action on behalf of a role.
//
// The action succeeds only when both the state machine permits the
// transition and the role is authorized for the action; otherwise
// ErrActionNotAvailable is returned and the order is left unchanged.
//
// Example:
//
//	if err := order.ApplyAction(order.Confirm, auth.Dispatcher); err != nil {
//	    // Rejected locally; nothing was mutated
//	}
func (o *Order) ApplyAction(action Action, role auth.Role) error {
	if err := errors.Join(action.Validate(), role.Validate()); err != nil {
		return err
	}

	if !action.IsAllowedFor(role) || !o.status.CanTransitionTo(action.TargetStatus()) {
		return fmt.Errorf("%w: %s as %s from %s", ErrActionNotAvailable, action, role, o.status)
	}

	newStatus, err := o.status.TransitionTo(action.TargetStatus())
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AssignDriver assigns the order to a delivery driver.
// The driver ID must be valid and the order must not be in a terminal state.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("cannot assign a driver to a %s order", o.status))
	}

	o.assignedDriverID = &driverID
	o.touch()
	return nil
}

// AttachBooking records the carrier booking on the order.
// Booking is only meaningful once the order is Confirmed and before it
// reaches a terminal state.
func (o *Order) AttachBooking(carrierCode string, trackingNumber string) error {
	if carrierCode == "" {
		return errs.NewValueIsRequiredError("carrier code")
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	if o.status != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("cannot book a carrier for a %s order", o.status))
	}

	o.carrierCode = carrierCode
	o.trackingNumber = trackingNumber
	o.touch()
	return nil
}

// touch bumps the aggregate version and refreshes the update timestamp.
func (o *Order) touch() {
	o.version++
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setRegion(region string) error {
	if region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	o.region = region
	return nil
}

func (o *Order) setOrigin(origin Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setDestination(destination Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setServiceLevel(serviceLevel ServiceLevel) error {
	if err := serviceLevel.Validate(); err != nil {
		return err
	}
	o.serviceLevel = serviceLevel
	return nil
}

func (o *Order) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.amount = amount
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
