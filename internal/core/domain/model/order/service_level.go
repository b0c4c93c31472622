package order

import (
	"fmt"

	"freightdesk/internal/pkg/errs"
)

// ServiceLevel represents the shipping speed and cost tier requested
// for an order. Carriers price and schedule against it.
type ServiceLevel int

const (
	// ServiceLevelUnknown represents an invalid or undefined service level.
	ServiceLevelUnknown ServiceLevel = iota

	// Express is the fastest, most expensive tier.
	Express

	// Standard is the default tier.
	Standard

	// Economy trades speed for price.
	Economy
)

func serviceLevelStrings() map[ServiceLevel]string {
	return map[ServiceLevel]string{
		ServiceLevelUnknown: "Unknown",
		Express:             "Express",
		Standard:            "Standard",
		Economy:             "Economy",
	}
}

func validServiceLevelStrings() map[ServiceLevel]string {
	//nolint:exhaustive // ServiceLevelUnknown is intentionally excluded as it's invalid
	return map[ServiceLevel]string{
		Express:  "Express",
		Standard: "Standard",
		Economy:  "Economy",
	}
}

// ServiceLevelFromString parses a service level from its wire representation.
// Returns a validation error for unrecognized service levels.
func ServiceLevelFromString(s string) (ServiceLevel, error) {
	for level, str := range validServiceLevelStrings() {
		if str == s {
			return level, nil
		}
	}
	return ServiceLevelUnknown, errs.NewValueIsInvalidErrorWithCause("service level",
		fmt.Errorf("%q is not a recognized service level", s))
}

// Validate checks if the ServiceLevel value is valid.
func (l ServiceLevel) Validate() error {
	if _, ok := validServiceLevelStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service level",
			fmt.Errorf("%d is not a valid service level", l))
	}
	return nil
}

// String returns the human-readable name of the service level.
// This method implements the fmt.Stringer interface.
func (l ServiceLevel) String() string {
	if str, ok := serviceLevelStrings()[l]; ok {
		return str
	}
	return "Unknown"
}
