package auth

import (
	"fmt"

	"freightdesk/internal/pkg/errs"
)

// Role represents the access role assigned to an account at creation time.
// Roles are immutable for the lifetime of the account and drive both the
// permission table and the order action authorization rules.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Admin has every capability, including the role matrix view.
	Admin

	// Dispatcher manages orders end to end except marking delivery.
	Dispatcher

	// Driver sees only assigned orders and can mark them delivered.
	Driver

	// Viewer is a customer-facing read-only role scoped to own orders.
	Viewer
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		Admin:       "Admin",
		Dispatcher:  "Dispatcher",
		Driver:      "Driver",
		Viewer:      "Viewer",
	}
}

func validRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:      "Admin",
		Dispatcher: "Dispatcher",
		Driver:     "Driver",
		Viewer:     "Viewer",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns a validation error for unrecognized roles.
func RoleFromString(s string) (Role, error) {
	for role, str := range validRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a recognized role", s))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: Admin, Dispatcher, Driver, Viewer.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := validRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
