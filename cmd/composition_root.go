package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	httpin "freightdesk/internal/adapters/in/http"
	"freightdesk/internal/adapters/out/carriers"
	"freightdesk/internal/adapters/out/memory/orderindex"
	"freightdesk/internal/adapters/out/postgres"
	"freightdesk/internal/adapters/out/simulation"
	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/domain/services/routing"
	"freightdesk/internal/jobs"
	"freightdesk/internal/pkg/audit"
)

// CompositionRoot wires every adapter and use case together. It owns the
// singletons the application shares: the order index, the in-flight
// registry, the order number sequence, the carrier factory, the routing
// engine, the audit log and the agent fleet.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	index    *orderindex.Index
	inflight *commands.InflightRegistry
	sequence *order.NumberSequence

	carriers *carriers.Factory
	engine   *routing.Engine
	auditLog *audit.Log

	fleet      *simulation.Fleet
	jobManager *jobs.JobManager

	quoteTimeout time.Duration
	logger       *slog.Logger
}

// NewCompositionRoot builds the object graph. The order index is rebuilt
// from storage so the board is complete after a restart, and the number
// sequence continues after the stored order count.
func NewCompositionRoot(
	ctx context.Context,
	config Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	engine, err := routing.DefaultEngine()
	if err != nil {
		return nil, fmt.Errorf("routing engine: %w", err)
	}

	feed := simulation.NewFeed(logger)
	fleet, err := simulation.NewFleet(
		intSetting(config.AgentCount, simulation.DefaultAgentCount),
		int64Setting(config.AgentFeedSeed, simulation.DefaultSeed),
		feed,
	)
	if err != nil {
		return nil, fmt.Errorf("agent fleet: %w", err)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	index := orderindex.NewIndex()
	stored, err := uowFactory.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("rebuild order index: %w", err)
	}
	for _, aggregate := range stored {
		index.Upsert(aggregate)
	}

	return &CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   uowFactory,
		index:        index,
		inflight:     commands.NewInflightRegistry(),
		sequence:     order.NewNumberSequence(uint64(len(stored))),
		carriers:     carriers.NewFactory(),
		engine:       engine,
		auditLog:     audit.NewLog(audit.DefaultCapacity),
		fleet:        fleet,
		jobManager:   jobs.NewJobManager(fleet, logger),
		quoteTimeout: durationMsSetting(config.QuoteTimeoutMs, queries.DefaultQuoteTimeout),
		logger:       logger,
	}, nil
}

// JobManager returns the background job manager.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// CreateServer builds the HTTP server over audited command dispatchers
// and the query handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.createOrderDispatch(),
		c.transitionOrderDispatch(),
		c.bookCarrierDispatch(),
		c.assignDriverDispatch(),
		queries.NewListOrdersQueryHandler(c.index),
		queries.NewGetOrderQueryHandler(c.gormDB),
		queries.NewListShipmentsQueryHandler(c.uowFactory.Create().OrderRepository()),
		queries.NewGetQuotesQueryHandler(c.carriers, c.quoteTimeout),
		queries.NewCompareRoutesQueryHandler(c.engine),
		queries.NewGetAuditLogQueryHandler(c.auditLog),
		c.carriers,
		c.fleet,
	)
}

func (c *CompositionRoot) createOrderDispatch() httpin.CommandFunc[commands.CreateOrderCommand] {
	handler := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.sequence, c.index)
	return audited(c.auditLog, c.logger, "CreateOrder", handler.Handle)
}

func (c *CompositionRoot) transitionOrderDispatch() httpin.CommandFunc[commands.TransitionOrderCommand] {
	handler := commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.inflight, c.index)
	return transitionDispatch(c.auditLog, c.logger, handler.Handle)
}

func (c *CompositionRoot) bookCarrierDispatch() httpin.CommandFunc[commands.BookCarrierCommand] {
	handler := commands.NewBookCarrierCommandHandler(c.orderUoWFactory(), c.carriers, c.inflight, c.index)
	return audited(c.auditLog, c.logger, "BookCarrier", handler.Handle)
}

func (c *CompositionRoot) assignDriverDispatch() httpin.CommandFunc[commands.AssignDriverCommand] {
	handler := commands.NewAssignDriverCommandHandler(c.orderUoWFactory(), c.inflight, c.index)
	return audited(c.auditLog, c.logger, "AssignDriver", handler.Handle)
}

// transitionDispatch audits every lifecycle action under its own name:
// a cancellation lands in the log as "CancelOrder", a confirmation as
// "ConfirmOrder", and so on. Commands carrying an unknown action fall
// back to a generic name; the handler rejects them anyway.
func transitionDispatch(
	log *audit.Log,
	logger *slog.Logger,
	handle func(ctx context.Context, cmd commands.TransitionOrderCommand) error,
) httpin.CommandFunc[commands.TransitionOrderCommand] {
	byAction := make(map[order.Action]httpin.CommandFunc[commands.TransitionOrderCommand])
	for _, action := range []order.Action{order.Confirm, order.Ship, order.Deliver, order.Cancel} {
		byAction[action] = audited(log, logger, action.String()+"Order", handle)
	}
	fallback := audited(log, logger, "TransitionOrder", handle)

	return func(ctx context.Context, cmd commands.TransitionOrderCommand) error {
		if dispatch, ok := byAction[cmd.Action()]; ok {
			return dispatch(ctx, cmd)
		}

		return fallback(ctx, cmd)
	}
}

// audited decorates a command handler with the audit wrapper and adapts
// it to the server's dispatch shape. The correlation id drawn for the
// entry rides the handler's context so downstream calls can attach it.
func audited[C any](
	log *audit.Log,
	logger *slog.Logger,
	action string,
	handle func(ctx context.Context, cmd C) error,
) httpin.CommandFunc[C] {
	wrapped := audit.Wrap(log, logger, action,
		func(ctx context.Context, correlationID uuid.UUID, cmd C) (struct{}, error) {
			return struct{}{}, handle(audit.WithCorrelationID(ctx, correlationID), cmd)
		})

	return func(ctx context.Context, cmd C) error {
		_, err := wrapped(ctx, cmd)
		return err
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return funcOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

func intSetting(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}

	return parsed
}

func int64Setting(value string, fallback int64) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}

	return parsed
}

func durationMsSetting(value string, fallback time.Duration) time.Duration {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}

	return time.Duration(parsed) * time.Millisecond
}
