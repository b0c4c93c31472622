package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// recordingProjection captures committed aggregates without mock ceremony.
type recordingProjection struct {
	mu       sync.Mutex
	upserted []*order.Order
}

func (p *recordingProjection) Upsert(aggregate *order.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.upserted = append(p.upserted, aggregate)
}

func (p *recordingProjection) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.upserted)
}

func (p *recordingProjection) last() *order.Order {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.upserted) == 0 {
		return nil
	}
	return p.upserted[len(p.upserted)-1]
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("88 Nanjing Road", "Shanghai", "Shanghai", "200001", "CN")
	require.NoError(t, err)
	return address
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	weight, err := kernel.NewWeight(2.5, kernel.Kilograms)
	require.NoError(t, err)
	item, err := order.NewItem("Ceramic vase", 1, weight, nil)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAmount(t *testing.T) kernel.Money {
	t.Helper()
	amount, err := kernel.NewMoney(199.5, kernel.DefaultCurrency)
	require.NoError(t, err)
	return amount
}

// newOrderInStatus builds a fresh order and walks it to the wanted status
// through legal admin actions.
func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-20260301-000042", kernel.NewUUID(), "Wang Wei",
		"East China", testAddress(t), testAddress(t),
		order.Normal, order.Express, testAmount(t), testItems(t),
	)
	require.NoError(t, err)

	var path []order.Action
	switch status {
	case order.Created:
	case order.Confirmed:
		path = []order.Action{order.Confirm}
	case order.Shipped:
		path = []order.Action{order.Confirm, order.Ship}
	case order.Delivered:
		path = []order.Action{order.Confirm, order.Ship, order.Deliver}
	case order.Cancelled:
		path = []order.Action{order.Cancel}
	default:
		t.Fatalf("unsupported status %s", status)
	}

	for _, action := range path {
		require.NoError(t, aggregate.ApplyAction(action, auth.Admin))
	}
	require.Equal(t, status, aggregate.Status())

	return aggregate
}

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Wang Wei", "East China",
		testAddress(t), testAddress(t),
		order.Urgent, order.Express, testAmount(t), testItems(t),
	)
	require.NoError(t, err)

	return cmd
}
