package http

import (
	"freightdesk/internal/adapters/out/memory/orderindex"
	"freightdesk/internal/adapters/out/simulation"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/audit"
)

// Error is the uniform error body every failing endpoint returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressPayload carries a postal address over the wire.
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (p AddressPayload) toDomain() (order.Address, error) {
	return order.NewAddress(p.Street, p.City, p.Province, p.PostalCode, p.Country)
}

func addressPayloadFromDomain(address order.Address) AddressPayload {
	return AddressPayload{
		Street:     address.Street(),
		City:       address.City(),
		Province:   address.Province(),
		PostalCode: address.PostalCode(),
		Country:    address.Country(),
	}
}

// WeightPayload carries a shipment weight with its unit, e.g. {12.5, "Kg"}.
type WeightPayload struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (p WeightPayload) toDomain() (kernel.Weight, error) {
	unit, err := kernel.WeightUnitFromString(p.Unit)
	if err != nil {
		return kernel.Weight{}, err
	}

	return kernel.NewWeight(p.Value, unit)
}

// MoneyPayload carries a monetary amount with its currency.
type MoneyPayload struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func moneyPayloadFromDomain(money kernel.Money) MoneyPayload {
	return MoneyPayload{Amount: money.Amount(), Currency: money.Currency()}
}

// GeoPointPayload carries one coordinate pair.
type GeoPointPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p GeoPointPayload) toDomain() (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(p.Latitude, p.Longitude)
}

func geoPointPayloadFromDomain(point kernel.GeoPoint) GeoPointPayload {
	return GeoPointPayload{Latitude: point.Latitude(), Longitude: point.Longitude()}
}

// DimensionsPayload carries package dimensions in centimeters.
type DimensionsPayload struct {
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
	HeightCm float64 `json:"heightCm"`
}

// ItemPayload carries one order line.
type ItemPayload struct {
	Description string             `json:"description"`
	Quantity    int                `json:"quantity"`
	Weight      WeightPayload      `json:"weight"`
	Dimensions  *DimensionsPayload `json:"dimensions,omitempty"`
}

func (p ItemPayload) toDomain() (order.Item, error) {
	weight, err := p.Weight.toDomain()
	if err != nil {
		return order.Item{}, err
	}

	var dimensions *order.Dimensions
	if p.Dimensions != nil {
		dimensions = &order.Dimensions{
			LengthCm: p.Dimensions.LengthCm,
			WidthCm:  p.Dimensions.WidthCm,
			HeightCm: p.Dimensions.HeightCm,
		}
	}

	return order.NewItem(p.Description, p.Quantity, weight, dimensions)
}

func itemPayloadFromDomain(item order.Item) ItemPayload {
	payload := ItemPayload{
		Description: item.Description(),
		Quantity:    item.Quantity(),
		Weight: WeightPayload{
			Value: item.Weight().Value(),
			Unit:  item.Weight().Unit().String(),
		},
	}
	if dimensions := item.Dimensions(); dimensions != nil {
		payload.Dimensions = &DimensionsPayload{
			LengthCm: dimensions.LengthCm,
			WidthCm:  dimensions.WidthCm,
			HeightCm: dimensions.HeightCm,
		}
	}

	return payload
}

// ContactPayload carries one booking party.
type ContactPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

func (p ContactPayload) toDomain() ports.Contact {
	return ports.Contact{Name: p.Name, Phone: p.Phone, Email: p.Email}
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string         `json:"customerId"`
	CustomerName string         `json:"customerName"`
	Region       string         `json:"region"`
	Origin       AddressPayload `json:"origin"`
	Destination  AddressPayload `json:"destination"`
	Priority     string         `json:"priority"`
	ServiceLevel string         `json:"serviceLevel"`
	Amount       MoneyPayload   `json:"amount"`
	Items        []ItemPayload  `json:"items"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// TransitionOrderRequest is the body of POST /api/v1/orders/:id/transition.
type TransitionOrderRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:id/assign-driver.
type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// BookCarrierRequest is the body of POST /api/v1/orders/:id/book.
type BookCarrierRequest struct {
	CarrierCode string         `json:"carrierCode"`
	Sender      ContactPayload `json:"sender"`
	Recipient   ContactPayload `json:"recipient"`
}

// QuoteShipmentRequest is the body of POST /api/v1/carriers/quotes.
type QuoteShipmentRequest struct {
	Origin       AddressPayload `json:"origin"`
	Destination  AddressPayload `json:"destination"`
	Weight       WeightPayload  `json:"weight"`
	ServiceLevel string         `json:"serviceLevel"`
}

// QuotePayload is one carrier's price answer.
type QuotePayload struct {
	CarrierCode   string       `json:"carrierCode"`
	Price         MoneyPayload `json:"price"`
	EstimatedDays int          `json:"estimatedDays"`
	ServiceLevel  string       `json:"serviceLevel"`
}

func quotePayloadFromDomain(quote ports.Quote) QuotePayload {
	return QuotePayload{
		CarrierCode:   quote.CarrierCode,
		Price:         moneyPayloadFromDomain(quote.Price),
		EstimatedDays: quote.EstimatedDays,
		ServiceLevel:  quote.ServiceLevel.String(),
	}
}

// QuotesResponse is the aggregated quote comparison.
type QuotesResponse struct {
	Quotes      []QuotePayload `json:"quotes"`
	Recommended QuotePayload   `json:"recommended"`
	Reason      string         `json:"reason"`
}

// CompareRoutesRequest is the body of POST /api/v1/routes/compare.
type CompareRoutesRequest struct {
	Origin       GeoPointPayload `json:"origin"`
	Destination  GeoPointPayload `json:"destination"`
	Weight       WeightPayload   `json:"weight"`
	ServiceLevel string          `json:"serviceLevel"`
}

// RoutePayload is one planned route.
type RoutePayload struct {
	Strategy           string            `json:"strategy"`
	DistanceKm         float64           `json:"distanceKm"`
	Duration           string            `json:"duration"`
	Cost               MoneyPayload      `json:"cost"`
	RecommendedCarrier string            `json:"recommendedCarrier"`
	Path               []GeoPointPayload `json:"path"`
}

func routePayloadFromDomain(route queries.CompareRoutesQueryResponse) RoutePayload {
	path := make([]GeoPointPayload, len(route.Path))
	for i, point := range route.Path {
		path[i] = geoPointPayloadFromDomain(point)
	}

	return RoutePayload{
		Strategy:           route.Strategy,
		DistanceKm:         route.DistanceKm,
		Duration:           route.Duration,
		Cost:               moneyPayloadFromDomain(route.Cost),
		RecommendedCarrier: route.RecommendedCarrier,
		Path:               path,
	}
}

// CarrierPayload describes a carrier for listing.
type CarrierPayload struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	ServiceLevels []string `json:"serviceLevels"`
	Rating        float64  `json:"rating"`
	PriceTier     string   `json:"priceTier"`
}

func carrierPayloadFromDomain(metadata ports.CarrierMetadata) CarrierPayload {
	levels := make([]string, len(metadata.ServiceLevels))
	for i, level := range metadata.ServiceLevels {
		levels[i] = level.String()
	}

	return CarrierPayload{
		Code:          metadata.Code,
		Name:          metadata.Name,
		ServiceLevels: levels,
		Rating:        metadata.Rating,
		PriceTier:     metadata.PriceTier,
	}
}

// OrderSummaryPayload is one order board row.
type OrderSummaryPayload struct {
	ID               string       `json:"id"`
	OrderNumber      string       `json:"orderNumber"`
	CustomerID       string       `json:"customerId"`
	CustomerName     string       `json:"customerName"`
	AssignedDriverID string       `json:"assignedDriverId,omitempty"`
	Region           string       `json:"region"`
	Status           string       `json:"status"`
	Priority         string       `json:"priority"`
	ServiceLevel     string       `json:"serviceLevel"`
	Amount           MoneyPayload `json:"amount"`
	CarrierCode      string       `json:"carrierCode,omitempty"`
	TrackingNumber   string       `json:"trackingNumber,omitempty"`
	CreatedAt        string       `json:"createdAt"`
}

func orderSummaryPayloadFromDomain(row orderindex.Summary) OrderSummaryPayload {
	payload := OrderSummaryPayload{
		ID:             row.ID.String(),
		OrderNumber:    row.OrderNumber,
		CustomerID:     row.CustomerID.String(),
		CustomerName:   row.CustomerName,
		Region:         row.Region,
		Status:         row.Status.String(),
		Priority:       row.Priority.String(),
		ServiceLevel:   row.ServiceLevel.String(),
		Amount:         moneyPayloadFromDomain(row.Amount),
		CarrierCode:    row.CarrierCode,
		TrackingNumber: row.TrackingNumber,
		CreatedAt:      row.CreatedAt.Format(timeFormat),
	}
	if row.AssignedDriverID != nil {
		payload.AssignedDriverID = row.AssignedDriverID.String()
	}

	return payload
}

// ShipmentPayload is one in-transit shipment on the tracking view.
type ShipmentPayload struct {
	ID               string `json:"id"`
	OrderNumber      string `json:"orderNumber"`
	CustomerName     string `json:"customerName"`
	AssignedDriverID string `json:"assignedDriverId,omitempty"`
	Region           string `json:"region"`
	Priority         string `json:"priority"`
	ServiceLevel     string `json:"serviceLevel"`
	CarrierCode      string `json:"carrierCode"`
	TrackingNumber   string `json:"trackingNumber"`
	UpdatedAt        string `json:"updatedAt"`
}

func shipmentPayloadFromResponse(shipment queries.ListShipmentsQueryResponse) ShipmentPayload {
	payload := ShipmentPayload{
		ID:             shipment.ID.String(),
		OrderNumber:    shipment.OrderNumber,
		CustomerName:   shipment.CustomerName,
		Region:         shipment.Region,
		Priority:       shipment.Priority.String(),
		ServiceLevel:   shipment.ServiceLevel.String(),
		CarrierCode:    shipment.CarrierCode,
		TrackingNumber: shipment.TrackingNumber,
		UpdatedAt:      shipment.UpdatedAt.Format(timeFormat),
	}
	if shipment.AssignedDriverID != nil {
		payload.AssignedDriverID = shipment.AssignedDriverID.String()
	}

	return payload
}

// OrderDetailPayload is the full order detail view.
type OrderDetailPayload struct {
	ID               string         `json:"id"`
	OrderNumber      string         `json:"orderNumber"`
	CustomerID       string         `json:"customerId"`
	CustomerName     string         `json:"customerName"`
	AssignedDriverID string         `json:"assignedDriverId,omitempty"`
	Region           string         `json:"region"`
	Origin           AddressPayload `json:"origin"`
	Destination      AddressPayload `json:"destination"`
	Priority         string         `json:"priority"`
	ServiceLevel     string         `json:"serviceLevel"`
	Amount           MoneyPayload   `json:"amount"`
	Items            []ItemPayload  `json:"items"`
	Status           string         `json:"status"`
	CarrierCode      string         `json:"carrierCode,omitempty"`
	TrackingNumber   string         `json:"trackingNumber,omitempty"`
	Version          int            `json:"version"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"`
}

func orderDetailPayloadFromDomain(detail queries.GetOrderQueryResponse) OrderDetailPayload {
	items := make([]ItemPayload, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = itemPayloadFromDomain(item)
	}

	payload := OrderDetailPayload{
		ID:             detail.ID.String(),
		OrderNumber:    detail.OrderNumber,
		CustomerID:     detail.CustomerID.String(),
		CustomerName:   detail.CustomerName,
		Region:         detail.Region,
		Origin:         addressPayloadFromDomain(detail.Origin),
		Destination:    addressPayloadFromDomain(detail.Destination),
		Priority:       detail.Priority.String(),
		ServiceLevel:   detail.ServiceLevel.String(),
		Amount:         moneyPayloadFromDomain(detail.Amount),
		Items:          items,
		Status:         detail.Status.String(),
		CarrierCode:    detail.CarrierCode,
		TrackingNumber: detail.TrackingNumber,
		Version:        detail.Version,
		CreatedAt:      detail.CreatedAt.Format(timeFormat),
		UpdatedAt:      detail.UpdatedAt.Format(timeFormat),
	}
	if detail.AssignedDriverID != nil {
		payload.AssignedDriverID = detail.AssignedDriverID.String()
	}

	return payload
}

// AgentPayload is one delivery agent on the live map.
type AgentPayload struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Status          string          `json:"status"`
	Location        GeoPointPayload `json:"location"`
	AssignedOrders  []string        `json:"assignedOrders"`
	Region          string          `json:"region"`
	Vehicle         string          `json:"vehicle"`
	Rating          float64         `json:"rating"`
	TotalDeliveries int             `json:"totalDeliveries"`
}

func agentPayloadFromDomain(agent simulation.Agent) AgentPayload {
	return AgentPayload{
		ID:              agent.ID,
		Name:            agent.Name,
		Phone:           agent.Phone,
		Status:          agent.Status.String(),
		Location:        geoPointPayloadFromDomain(agent.Location),
		AssignedOrders:  agent.AssignedOrders,
		Region:          agent.Region,
		Vehicle:         agent.Vehicle.String(),
		Rating:          agent.Rating,
		TotalDeliveries: agent.TotalDeliveries,
	}
}

// AuditEntryPayload is one audited operation.
type AuditEntryPayload struct {
	CorrelationID string `json:"correlationId"`
	Action        string `json:"action"`
	StartedAt     string `json:"startedAt"`
	FinishedAt    string `json:"finishedAt"`
	DurationMs    int64  `json:"durationMs"`
	Success       bool   `json:"success"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

func auditEntryPayloadFromDomain(entry audit.Entry) AuditEntryPayload {
	return AuditEntryPayload{
		CorrelationID: entry.CorrelationID.String(),
		Action:        entry.Action,
		StartedAt:     entry.StartedAt.Format(timeFormat),
		FinishedAt:    entry.FinishedAt.Format(timeFormat),
		DurationMs:    entry.Duration.Milliseconds(),
		Success:       entry.Success,
		ErrorMessage:  entry.ErrorMessage,
	}
}
