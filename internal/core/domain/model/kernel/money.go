package kernel

import (
	"errors"
	"fmt"
	"math"

	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

// DefaultCurrency is the currency used when none is specified by a caller.
const DefaultCurrency = "CNY"

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a monetary amount in a specific currency.
// Money is an immutable value object; amounts are rounded to two decimal
// places on construction. The zero value is invalid and will fail validation.
//
// Example:
//
//	price, err := kernel.NewMoney(37.005, "CNY")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: 37.01 CNY
type Money struct { //nolint:recvcheck //using for validation
	amount   float64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a new Money value with the given amount and currency.
// The amount must be a finite, non-negative number and is rounded to two
// decimal places. The currency must be a non-empty code such as "CNY".
func NewMoney(amount float64, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(money.setAmount(amount), money.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Validate checks if the Money was properly constructed using the constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount, rounded to two decimal places.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// String returns a human-readable representation such as "37.00 CNY".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.amount, m.currency)
}

// IsEqual compares two monetary values for equality of amount and currency.
// Both values must be properly constructed for the comparison to succeed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount == other.amount && m.currency == other.currency, nil
}

// IsLessThan reports whether this amount is strictly lower than the other.
// Both values must be properly constructed and share the same currency.
func (m Money) IsLessThan(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	if m.currency != other.currency {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("cannot compare %s with %s", m.currency, other.currency),
		)
	}

	return m.amount < other.amount, nil
}

// RoundMoney rounds an amount to two decimal places using half-away-from-zero rounding.
// All monetary results in the system go through this helper before presentation.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func (m *Money) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is not a finite non-negative number", amount))
	}
	m.amount = RoundMoney(amount)
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	m.currency = currency
	return nil
}
