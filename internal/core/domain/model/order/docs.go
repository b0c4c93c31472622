// Package order provides domain entities and business logic for shipment
// order management in the freightdesk brokerage. It implements the Order
// aggregate root with lifecycle management, the status state machine and
// the role-gated action table.
//
// The package includes:
//   - Order: The aggregate root managing the shipment lifecycle
//   - Status: The order state machine (Created through Delivered/Cancelled)
//   - Action: Role-gated operations mapped one-to-one to target statuses
//   - Address, Item: Validated value objects owned by the aggregate
//   - Priority, ServiceLevel: Enumerations with fixed sort ranking
//
// Status changes are only possible through ApplyAction, which enforces
// both state-machine reachability and role authorization before mutating
// the aggregate.
package order
