// Package http exposes the brokerage over a JSON API. Handlers translate
// request payloads into commands and queries, and domain errors into HTTP
// status codes; no business rule lives here.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"freightdesk/internal/adapters/out/memory/orderindex"
	"freightdesk/internal/adapters/out/simulation"
	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// Identity headers. Authentication itself is an upstream concern; the API
// trusts these headers the way it would trust claims from a gateway.
const (
	HeaderUserRole = "X-User-Role"
	HeaderUserID   = "X-User-Id"
)

const timeFormat = time.RFC3339

// CommandFunc is the shape of a dispatched command. The composition root
// decorates command handlers with auditing before handing them in, so the
// server never needs to know whether a command is wrapped.
type CommandFunc[C any] func(ctx context.Context, cmd C) error

// Server wires the HTTP surface to the application layer.
type Server struct {
	createOrder     CommandFunc[commands.CreateOrderCommand]
	transitionOrder CommandFunc[commands.TransitionOrderCommand]
	bookCarrier     CommandFunc[commands.BookCarrierCommand]
	assignDriver    CommandFunc[commands.AssignDriverCommand]

	listOrders    queries.ListOrdersQueryHandler
	getOrder      queries.GetOrderQueryHandler
	listShipments queries.ListShipmentsQueryHandler
	getQuotes     queries.GetQuotesQueryHandler
	compareRoutes queries.CompareRoutesQueryHandler
	getAuditLog   queries.GetAuditLogQueryHandler

	carriers ports.CarrierFactory
	fleet    *simulation.Fleet
}

// NewServer creates the HTTP server over the given command dispatchers,
// query handlers and collaborators.
func NewServer(
	createOrder CommandFunc[commands.CreateOrderCommand],
	transitionOrder CommandFunc[commands.TransitionOrderCommand],
	bookCarrier CommandFunc[commands.BookCarrierCommand],
	assignDriver CommandFunc[commands.AssignDriverCommand],
	listOrders queries.ListOrdersQueryHandler,
	getOrder queries.GetOrderQueryHandler,
	listShipments queries.ListShipmentsQueryHandler,
	getQuotes queries.GetQuotesQueryHandler,
	compareRoutes queries.CompareRoutesQueryHandler,
	getAuditLog queries.GetAuditLogQueryHandler,
	carriers ports.CarrierFactory,
	fleet *simulation.Fleet,
) *Server {
	return &Server{
		createOrder:     createOrder,
		transitionOrder: transitionOrder,
		bookCarrier:     bookCarrier,
		assignDriver:    assignDriver,
		listOrders:      listOrders,
		getOrder:        getOrder,
		listShipments:   listShipments,
		getQuotes:       getQuotes,
		compareRoutes:   compareRoutes,
		getAuditLog:     getAuditLog,
		carriers:        carriers,
		fleet:           fleet,
	}
}

// Register attaches every route to the echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/carriers", s.GetCarriers)
	api.POST("/carriers/quotes", s.GetQuotes)
	api.POST("/routes/compare", s.CompareRoutes)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/assign-driver", s.AssignDriver)
	api.POST("/orders/:id/book", s.BookCarrier)
	api.GET("/shipments", s.GetShipments)
	api.GET("/agents", s.GetAgents)
	api.GET("/audit", s.GetAuditLog)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetCarriers handles GET /api/v1/carriers - lists every registered carrier.
func (s *Server) GetCarriers(ctx echo.Context) error {
	adapters := s.carriers.ListAll()

	response := make([]CarrierPayload, len(adapters))
	for i, adapter := range adapters {
		response[i] = carrierPayloadFromDomain(adapter.Metadata())
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetQuotes handles POST /api/v1/carriers/quotes - prices a shipment across
// all carriers and recommends the cheapest quote.
func (s *Server) GetQuotes(ctx echo.Context) error {
	var request QuoteShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return s.invalidBody(ctx)
	}

	origin, err := request.Origin.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	destination, err := request.Destination.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	weight, err := request.Weight.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	serviceLevel, err := order.ServiceLevelFromString(request.ServiceLevel)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetQuotesQuery(origin, destination, weight, serviceLevel)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.getQuotes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	quotes := make([]QuotePayload, len(result.Quotes))
	for i, quote := range result.Quotes {
		quotes[i] = quotePayloadFromDomain(quote)
	}

	return ctx.JSON(http.StatusOK, QuotesResponse{
		Quotes:      quotes,
		Recommended: quotePayloadFromDomain(result.Recommended),
		Reason:      result.Reason,
	})
}

// CompareRoutes handles POST /api/v1/routes/compare - plans the shipment
// under every strategy and returns the routes side by side.
func (s *Server) CompareRoutes(ctx echo.Context) error {
	var request CompareRoutesRequest
	if err := ctx.Bind(&request); err != nil {
		return s.invalidBody(ctx)
	}

	origin, err := request.Origin.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	destination, err := request.Destination.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	weight, err := request.Weight.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	serviceLevel, err := order.ServiceLevelFromString(request.ServiceLevel)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewCompareRoutesQuery(origin, destination, weight, serviceLevel)
	if err != nil {
		return s.fail(ctx, err)
	}

	routes, err := s.compareRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]RoutePayload, len(routes))
	for i, route := range routes {
		response[i] = routePayloadFromDomain(route)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - the order board, filtered and
// sorted, scoped to what the caller's role may see.
func (s *Server) GetOrders(ctx echo.Context) error {
	role, userID, err := s.identity(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	filters, err := filtersFromQuery(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(filters, role, userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	// Ordering is resolved per request so two clients sorting the board
	// differently never affect each other, and repeating a GET is stable.
	if sortParam := ctx.QueryParam("sort"); sortParam != "" {
		ordering, sortErr := orderingFromQuery(sortParam, ctx.QueryParam("dir"))
		if sortErr != nil {
			return s.fail(ctx, sortErr)
		}
		query = query.WithOrdering(ordering)
	}

	rows, err := s.listOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderSummaryPayload, len(rows))
	for i, row := range rows {
		response[i] = orderSummaryPayloadFromDomain(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new shipment order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.invalidBody(ctx)
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	origin, err := request.Origin.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	destination, err := request.Destination.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}
	priority, err := order.PriorityFromString(request.Priority)
	if err != nil {
		return s.fail(ctx, err)
	}
	serviceLevel, err := order.ServiceLevelFromString(request.ServiceLevel)
	if err != nil {
		return s.fail(ctx, err)
	}

	currency := request.Amount.Currency
	if currency == "" {
		currency = kernel.DefaultCurrency
	}
	amount, err := kernel.NewMoney(request.Amount.Amount, currency)
	if err != nil {
		return s.fail(ctx, err)
	}

	items := make([]order.Item, len(request.Items))
	for i, payload := range request.Items {
		items[i], err = payload.toDomain()
		if err != nil {
			return s.fail(ctx, err)
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		request.CustomerName,
		request.Region,
		origin,
		destination,
		priority,
		serviceLevel,
		amount,
		items,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createOrder(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - the full order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	detail, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailPayloadFromDomain(detail))
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - applies a
// lifecycle action as the role named in the identity headers.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	role, _, err := s.identity(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var request TransitionOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return s.invalidBody(ctx)
	}

	action, err := order.ActionFromString(request.Action)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, action, role, request.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.transitionOrder(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var request AssignDriverRequest
	if err = ctx.Bind(&request); err != nil {
		return s.invalidBody(ctx)
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.assignDriver(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BookCarrier handles POST /api/v1/orders/:id/book - books a confirmed
// order with the named carrier.
func (s *Server) BookCarrier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var request BookCarrierRequest
	if err = ctx.Bind(&request); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewBookCarrierCommand(
		orderID,
		request.CarrierCode,
		request.Sender.toDomain(),
		request.Recipient.toDomain(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.bookCarrier(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipments handles GET /api/v1/shipments - every order currently in
// transit with its carrier booking.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.listShipments.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ShipmentPayload, len(shipments))
	for i, shipment := range shipments {
		response[i] = shipmentPayloadFromResponse(shipment)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgents handles GET /api/v1/agents - a snapshot of the delivery fleet.
func (s *Server) GetAgents(ctx echo.Context) error {
	agents := s.fleet.Agents()

	response := make([]AgentPayload, len(agents))
	for i, agent := range agents {
		response[i] = agentPayloadFromDomain(agent)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditLog handles GET /api/v1/audit - recent audited operations,
// newest first. An optional limit query parameter trims the result.
func (s *Server) GetAuditLog(ctx echo.Context) error {
	limit := 0
	if limitParam := ctx.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("limit", err))
		}
		limit = parsed
	}

	query, err := queries.NewGetAuditLogQuery(limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.getAuditLog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]AuditEntryPayload, len(entries))
	for i, entry := range entries {
		response[i] = auditEntryPayloadFromDomain(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// identity reads the caller's role and user id from the request headers.
func (s *Server) identity(ctx echo.Context) (auth.Role, kernel.UUID, error) {
	role, err := auth.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return auth.RoleUnknown, kernel.UUID{}, err
	}

	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return auth.RoleUnknown, kernel.UUID{}, err
	}

	return role, userID, nil
}

func (s *Server) invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// fail maps a domain error to its HTTP status and renders the error body.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// statusForError translates error families into HTTP statuses. Version
// conflicts and in-flight mutation rejections both read as 409 because the
// client remedy is the same: reload and retry.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, order.ErrActionNotAvailable):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// filtersFromQuery builds projection filters from the list endpoint's
// query string. Repeatable parameters OR within their dimension.
func filtersFromQuery(ctx echo.Context) (orderindex.Filters, error) {
	var filters orderindex.Filters
	params := ctx.QueryParams()

	for _, value := range params["status"] {
		status, err := order.StatusFromString(value)
		if err != nil {
			return orderindex.Filters{}, err
		}
		filters.Statuses = append(filters.Statuses, status)
	}
	for _, value := range params["priority"] {
		priority, err := order.PriorityFromString(value)
		if err != nil {
			return orderindex.Filters{}, err
		}
		filters.Priorities = append(filters.Priorities, priority)
	}
	for _, value := range params["serviceLevel"] {
		level, err := order.ServiceLevelFromString(value)
		if err != nil {
			return orderindex.Filters{}, err
		}
		filters.ServiceLevels = append(filters.ServiceLevels, level)
	}
	filters.Regions = append(filters.Regions, params["region"]...)

	filters.Search = ctx.QueryParam("search")

	if from := ctx.QueryParam("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return orderindex.Filters{}, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
		filters.From = parsed
	}
	if to := ctx.QueryParam("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return orderindex.Filters{}, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
		filters.To = parsed
	}

	return filters, nil
}

// orderingFromQuery resolves the sort and dir parameters into an explicit
// ordering. Direction defaults to ascending.
func orderingFromQuery(sortParam, dirParam string) (orderindex.Sort, error) {
	field, err := sortFieldFromString(sortParam)
	if err != nil {
		return orderindex.Sort{}, err
	}

	direction := orderindex.Ascending
	switch dirParam {
	case "", "asc":
	case "desc":
		direction = orderindex.Descending
	default:
		return orderindex.Sort{}, errs.NewValueIsInvalidError("dir")
	}

	return orderindex.Sort{Field: field, Direction: direction}, nil
}

func sortFieldFromString(s string) (orderindex.SortField, error) {
	switch s {
	case "orderNumber":
		return orderindex.SortByOrderNumber, nil
	case "customerName":
		return orderindex.SortByCustomerName, nil
	case "region":
		return orderindex.SortByRegion, nil
	case "status":
		return orderindex.SortByStatus, nil
	case "priority":
		return orderindex.SortByPriority, nil
	case "amount":
		return orderindex.SortByAmount, nil
	case "createdAt":
		return orderindex.SortByCreatedAt, nil
	default:
		return orderindex.SortFieldUnknown, errs.NewValueIsInvalidError("sort")
	}
}
