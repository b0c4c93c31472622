package kernel

import (
	"errors"
	"fmt"
	"math"

	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

// WeightUnit represents the unit a package weight was captured in.
// Cross-border shipments arrive with a mix of metric and market units,
// so every unit carries its conversion factor to kilograms.
type WeightUnit int

const (
	// WeightUnitUnknown represents an invalid or undefined weight unit.
	WeightUnitUnknown WeightUnit = iota

	// Kilograms is the canonical unit all pricing is computed in.
	Kilograms

	// Grams is one thousandth of a kilogram.
	Grams

	// Jin is the Chinese market catty, exactly half a kilogram.
	Jin

	// Pounds is the imperial avoirdupois pound.
	Pounds
)

// kilogramFactors maps each valid unit to its conversion factor to kilograms.
func kilogramFactors() map[WeightUnit]float64 {
	return map[WeightUnit]float64{
		Kilograms: 1,
		Grams:     0.001,
		Jin:       0.5,
		Pounds:    0.45359237,
	}
}

func weightUnitStrings() map[WeightUnit]string {
	return map[WeightUnit]string{
		Kilograms: "Kg",
		Grams:     "G",
		Jin:       "Jin",
		Pounds:    "Lb",
	}
}

// WeightUnitFromString parses a weight unit from its wire representation
// ("Kg", "G", "Jin", "Lb"). Returns a validation error for unrecognized units.
func WeightUnitFromString(s string) (WeightUnit, error) {
	for unit, str := range weightUnitStrings() {
		if str == s {
			return unit, nil
		}
	}
	return WeightUnitUnknown, errs.NewValueIsInvalidErrorWithCause("weight unit",
		fmt.Errorf("%q is not a recognized weight unit", s))
}

// Validate checks if the WeightUnit value is valid.
func (u WeightUnit) Validate() error {
	if _, ok := kilogramFactors()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("weight unit",
			fmt.Errorf("%d is not a valid weight unit", u))
	}
	return nil
}

// String returns the wire representation of the unit, or "Unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (u WeightUnit) String() string {
	if str, ok := weightUnitStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight represents a package weight with its capture unit.
// Weight is an immutable value object; the zero value is invalid and will
// fail validation. Carrier pricing normalizes every weight to kilograms
// before surcharges are applied, so quotes for equivalent weights expressed
// in different units are identical.
//
// Example:
//
//	w, _ := kernel.NewWeight(5, kernel.Jin)
//	kg := w.Kilograms() // 2.5
type Weight struct { //nolint:recvcheck //using for validation
	value float64
	unit  WeightUnit
	guard guard.ConstructorGuard
}

// NewWeight creates a new Weight with the specified value and unit.
// The value must be a finite, positive number and the unit must be valid.
func NewWeight(value float64, unit WeightUnit) (Weight, error) {
	weight := Weight{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(weight.setValue(value), weight.setUnit(unit)); err != nil {
		return Weight{}, err
	}

	return weight, nil
}

// Validate checks if the Weight was properly constructed using the constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Value returns the weight value in its capture unit.
func (w Weight) Value() float64 {
	return w.value
}

// Unit returns the unit the weight was captured in.
func (w Weight) Unit() WeightUnit {
	return w.unit
}

// Kilograms returns the weight normalized to kilograms.
// This is the canonical value all carrier surcharges are computed from.
func (w Weight) Kilograms() float64 {
	return w.value * kilogramFactors()[w.unit]
}

// String returns a human-readable representation such as "2.5 Kg".
// This method implements the fmt.Stringer interface.
func (w Weight) String() string {
	return fmt.Sprintf("%g %s", w.value, w.unit)
}

func (w *Weight) setValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight value",
			fmt.Errorf("%f is not greater than 0", value))
	}
	w.value = value
	return nil
}

func (w *Weight) setUnit(unit WeightUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	w.unit = unit
	return nil
}
