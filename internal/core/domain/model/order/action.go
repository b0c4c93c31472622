package order

import (
	"fmt"

	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/pkg/errs"
)

// Action represents a user-initiated order operation. Each action maps
// one-to-one to a target status in the state machine.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// Confirm moves an order to Confirmed.
	Confirm

	// Ship moves an order to Shipped.
	Ship

	// Deliver moves an order to Delivered.
	Deliver

	// Cancel moves an order to Cancelled.
	Cancel
)

// actionOrder fixes the enumeration order actions are evaluated and
// presented in. First-listed wins when callers need a stable ordering.
func actionOrder() []Action {
	return []Action{Confirm, Ship, Deliver, Cancel}
}

func actionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown: "Unknown",
		Confirm:       "Confirm",
		Ship:          "Ship",
		Deliver:       "Deliver",
		Cancel:        "Cancel",
	}
}

// actionTargets maps each action to the status it produces.
func actionTargets() map[Action]Status {
	return map[Action]Status{
		Confirm: Confirmed,
		Ship:    Shipped,
		Deliver: Delivered,
		Cancel:  Cancelled,
	}
}

// actionRoles is the static authorization table for order actions.
// Confirm, Ship and Cancel belong to back-office roles; Deliver belongs
// to the driver actually carrying the shipment (and Admin).
func actionRoles() map[Action][]auth.Role {
	return map[Action][]auth.Role{
		Confirm: {auth.Admin, auth.Dispatcher},
		Ship:    {auth.Admin, auth.Dispatcher},
		Deliver: {auth.Admin, auth.Driver},
		Cancel:  {auth.Admin, auth.Dispatcher},
	}
}

// ActionFromString parses an action from its wire representation.
// Returns a validation error for unrecognized actions.
func ActionFromString(s string) (Action, error) {
	for _, action := range actionOrder() {
		if actionStrings()[action] == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a recognized action", s))
}

// Validate checks if the Action value is valid.
func (a Action) Validate() error {
	if _, ok := actionTargets()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns the human-readable name of the action.
// This method implements the fmt.Stringer interface and is safe
// to call on any Action value, including invalid ones.
func (a Action) String() string {
	if str, ok := actionStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// TargetStatus returns the status this action produces.
// Invalid actions yield StatusUnknown.
func (a Action) TargetStatus() Status {
	return actionTargets()[a]
}

// IsAllowedFor reports whether the role is authorized to perform the action,
// independent of the order's current state. Unknown actions and roles are denied.
func (a Action) IsAllowedFor(role auth.Role) bool {
	for _, allowed := range actionRoles()[a] {
		if allowed == role {
			return true
		}
	}
	return false
}

// AvailableActions computes the actions a role can perform on an order in the
// given status. An action is available only when both conditions hold:
//
//  1. its target status is reachable from the current status per the state
//     machine adjacency, and
//  2. the role is authorized for the action per the static action-role table.
//
// Reachability alone is not sufficient, and neither is authorization.
// Orders in a terminal status yield an empty set for every role.
// This is a pure decision function: it never mutates anything, and callers
// must separately apply the transition and handle failure by leaving the
// order unchanged.
func AvailableActions(status Status, role auth.Role) []Action {
	actions := make([]Action, 0, len(actionOrder()))
	for _, action := range actionOrder() {
		if status.CanTransitionTo(action.TargetStatus()) && action.IsAllowedFor(role) {
			actions = append(actions, action)
		}
	}
	return actions
}
