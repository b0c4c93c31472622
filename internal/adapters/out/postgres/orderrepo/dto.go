// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Addresses are flattened into prefixed columns, items are stored as a JSON
// document, and the version column backs optimistic concurrency control.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber      string    `gorm:"uniqueIndex"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	CustomerName     string
	AssignedDriverID *uuid.UUID `gorm:"type:uuid;index"`
	Region           string     `gorm:"index"`
	Origin           AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination      AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Priority         int
	ServiceLevel     int
	Amount           float64
	Currency         string
	Items            []byte `gorm:"type:jsonb"`
	Status           int    `gorm:"index"`
	CarrierCode      string
	TrackingNumber   string
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded address within the order table.
type AddressDTO struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// ItemDTO is the JSON shape one order line item is stored in.
type ItemDTO struct {
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	WeightValue float64           `json:"weight_value"`
	WeightUnit  string            `json:"weight_unit"`
	Dimensions  *order.Dimensions `json:"dimensions,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var driverID *uuid.UUID
	if id := aggregate.AssignedDriver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items, err := itemsToJSON(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		CustomerName:     aggregate.CustomerName(),
		AssignedDriverID: driverID,
		Region:           aggregate.Region(),
		Origin:           addressFromDomain(aggregate.Origin()),
		Destination:      addressFromDomain(aggregate.Destination()),
		Priority:         int(aggregate.Priority()),
		ServiceLevel:     int(aggregate.ServiceLevel()),
		Amount:           aggregate.Amount().Amount(),
		Currency:         aggregate.Amount().Currency(),
		Items:            items,
		Status:           int(aggregate.Status()),
		CarrierCode:      aggregate.CarrierCode(),
		TrackingNumber:   aggregate.TrackingNumber(),
		Version:          aggregate.Version(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		dto.CustomerName,
		dto.Region,
		origin,
		destination,
		order.Priority(dto.Priority),
		order.ServiceLevel(dto.ServiceLevel),
		amount,
		items,
		order.Status(dto.Status),
		driverID,
		dto.CarrierCode,
		dto.TrackingNumber,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func addressFromDomain(address order.Address) AddressDTO {
	return AddressDTO{
		Street:     address.Street(),
		City:       address.City(),
		Province:   address.Province(),
		PostalCode: address.PostalCode(),
		Country:    address.Country(),
	}
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	return order.NewAddress(dto.Street, dto.City, dto.Province, dto.PostalCode, dto.Country)
}

func itemsToJSON(items []order.Item) ([]byte, error) {
	rows := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		rows = append(rows, ItemDTO{
			Description: item.Description(),
			Quantity:    item.Quantity(),
			WeightValue: item.Weight().Value(),
			WeightUnit:  item.Weight().Unit().String(),
			Dimensions:  item.Dimensions(),
		})
	}

	return json.Marshal(rows)
}

func itemsToDomain(data []byte) ([]order.Item, error) {
	var rows []ItemDTO
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rows))
	for _, row := range rows {
		unit, err := kernel.WeightUnitFromString(row.WeightUnit)
		if err != nil {
			return nil, err
		}

		weight, err := kernel.NewWeight(row.WeightValue, unit)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(row.Description, row.Quantity, weight, row.Dimensions)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
