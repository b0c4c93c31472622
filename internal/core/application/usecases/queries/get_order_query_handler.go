package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's detail from the database.
// Reads the row directly instead of rehydrating the aggregate: the detail
// view needs no behavior, only data.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%s: %s\n", detail.OrderNumber, detail.Status)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// itemRow mirrors the JSON shape order items are stored in.
type itemRow struct {
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	WeightValue float64           `json:"weight_value"`
	WeightUnit  string            `json:"weight_unit"`
	Dimensions  *order.Dimensions `json:"dimensions,omitempty"`
}

// Handle fetches the order detail. Returns an object-not-found error when
// no order with the requested ID exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			customer_name,
			assigned_driver_id,
			region,
			origin_street, origin_city, origin_province, origin_postal_code, origin_country,
			destination_street, destination_city, destination_province, destination_postal_code, destination_country,
			priority,
			service_level,
			amount,
			currency,
			items,
			status,
			carrier_code,
			tracking_number,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var response GetOrderQueryResponse
	var id, customerID uuid.UUID
	var driverID uuid.NullUUID
	var origin, destination [5]string
	var priority, serviceLevel, status int
	var amount float64
	var currency string
	var items []byte

	err := row.Scan(
		&id,
		&response.OrderNumber,
		&customerID,
		&response.CustomerName,
		&driverID,
		&response.Region,
		&origin[0], &origin[1], &origin[2], &origin[3], &origin[4],
		&destination[0], &destination[1], &destination[2], &destination[3], &destination[4],
		&priority,
		&serviceLevel,
		&amount,
		&currency,
		&items,
		&status,
		&response.CarrierCode,
		&response.TrackingNumber,
		&response.Version,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"orderID", query.OrderID(), err)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if driverID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.AssignedDriverID = &assigned
	}

	if response.Origin, err = order.NewAddress(
		origin[0], origin[1], origin[2], origin[3], origin[4]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.Destination, err = order.NewAddress(
		destination[0], destination[1], destination[2], destination[3], destination[4]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Priority = order.Priority(priority)
	if err = response.Priority.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ServiceLevel = order.ServiceLevel(serviceLevel)
	if err = response.ServiceLevel.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status)
	if err = response.Status.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Amount, err = kernel.NewMoney(amount, currency); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Items, err = itemsFromJSON(items); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func itemsFromJSON(data []byte) ([]order.Item, error) {
	var rows []itemRow
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
