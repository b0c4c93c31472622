package order

import (
	"errors"
	"fmt"

	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a postal address on either end of a shipment.
// Address is an immutable value object; the zero value is invalid and will
// fail validation - use the constructor to create instances.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	province   string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address. Street, city, province and postal code
// are required; country defaults to "CN" when empty.
func NewAddress(street, city, province, postalCode, country string) (Address, error) {
	address := Address{
		country: "CN",
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setProvince(province),
		address.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	if country != "" {
		address.country = country
	}

	return address, nil
}

// Validate checks if the Address was properly constructed using the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Province returns the province or state of the address.
func (a Address) Province() string {
	return a.province
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the ISO country code of the address.
func (a Address) Country() string {
	return a.country
}

// String returns a single-line rendering of the address.
// This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.street, a.city, a.province, a.postalCode, a.country)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setProvince(province string) error {
	if province == "" {
		return errs.NewValueIsRequiredError("province")
	}
	a.province = province
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}
