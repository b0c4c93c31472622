package order

import (
	"errors"
	"fmt"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when attempting to use an improperly initialized Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Dimensions holds optional package dimensions in centimeters.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Item represents a single line item within an order: a description,
// a quantity, a weight and optional dimensions.
// Item is an immutable value object.
type Item struct { //nolint:recvcheck //using for validation
	description string
	quantity    int
	weight      kernel.Weight
	dimensions  *Dimensions

	guard guard.ConstructorGuard
}

// NewItem creates a new line item. The description must be non-empty,
// the quantity positive and the weight a valid Weight value.
// Dimensions are optional and may be nil.
func NewItem(description string, quantity int, weight kernel.Weight, dimensions *Dimensions) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setWeight(weight),
		item.setDimensions(dimensions),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks if the Item was properly constructed using the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Description returns the human-readable description of the item.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the number of units of the item.
func (i Item) Quantity() int {
	return i.quantity
}

// Weight returns the per-unit weight of the item.
func (i Item) Weight() kernel.Weight {
	return i.weight
}

// Dimensions returns the optional package dimensions, or nil.
func (i Item) Dimensions() *Dimensions {
	if i.dimensions == nil {
		return nil
	}
	d := *i.dimensions
	return &d
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	i.weight = weight
	return nil
}

func (i *Item) setDimensions(dimensions *Dimensions) error {
	if dimensions == nil {
		return nil
	}
	if dimensions.LengthCm <= 0 || dimensions.WidthCm <= 0 || dimensions.HeightCm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			errors.New("length, width and height must all be greater than 0"))
	}
	d := *dimensions
	i.dimensions = &d
	return nil
}
