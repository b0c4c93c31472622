package order

import (
	"fmt"

	"freightdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct brokerage workflow.
//
// State transitions:
//
//	Created ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transitions leave them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Created is the initial status when an order is first registered.
	// Orders in this status await dispatcher confirmation.
	Created

	// Confirmed indicates a dispatcher accepted the order.
	// Confirmed orders can be booked with a carrier and shipped.
	Confirmed

	// Shipped indicates the order left the origin facility.
	Shipped

	// Delivered indicates the recipient received the shipment.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the order was withdrawn before shipping.
	// This is a terminal state.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Created:       "Created",
		Confirmed:     "Confirmed",
		Shipped:       "Shipped",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// statusTransitions is the static adjacency list of the order state machine.
// Terminal states map to empty slices.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Confirmed, Cancelled},
		Confirmed: {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// statusRank is the fixed ordering used for status sorting in projections.
// It follows lifecycle order, not alphabetical order.
func statusRank() map[Status]int {
	return map[Status]int{
		Created:   0,
		Confirmed: 1,
		Shipped:   2,
		Delivered: 3,
		Cancelled: 4,
	}
}

// StatusFromString parses a status from its wire representation.
// Returns a validation error for unrecognized statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Confirmed, Shipped, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Rank returns the fixed sort position of the status within the lifecycle.
// Invalid statuses sort after every valid one.
func (s Status) Rank() int {
	if rank, ok := statusRank()[s]; ok {
		return rank
	}
	return len(statusRank())
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered and Cancelled are the terminal states.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(statusTransitions()[s]) == 0
}

// CanTransitionTo reports whether the state machine permits moving
// from this status to the target status.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range statusTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from this status in a single
// transition. Terminal and invalid statuses yield an empty slice.
func (s Status) NextStatuses() []Status {
	next := statusTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// TransitionTo validates and performs a transition of the state machine.
//
// Returns:
//   - (to, nil) if the adjacency list permits the move
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by the Order aggregate to enforce lifecycle rules;
// callers that receive an error must leave the order unchanged.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(to) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("cannot transition from %s to %s", s, to))
	}

	return to, nil
}
