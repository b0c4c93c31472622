package commands_test

import (
	"testing"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate := newOrderInStatus(t, order.Confirmed)
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), driverID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	projection := &recordingProjection{}
	h := commands.NewAssignDriverCommandHandler(factory, commands.NewInflightRegistry(), projection)

	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, aggregate.AssignedDriver())
	assert.True(t, aggregate.AssignedDriver().IsEqual(driverID))
	require.Equal(t, 1, projection.count())
}

func TestAssignDriverCommandHandler_rejects_terminal_order(t *testing.T) {
	ctx := t.Context()

	aggregate := newOrderInStatus(t, order.Cancelled)
	cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	projection := &recordingProjection{}
	h := commands.NewAssignDriverCommandHandler(factory, commands.NewInflightRegistry(), projection)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	assert.Nil(t, aggregate.AssignedDriver())
	assert.Zero(t, projection.count())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInflightRegistry(t *testing.T) {
	registry := commands.NewInflightRegistry()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, registry.Acquire(first))

	// Same order conflicts, another order does not.
	assert.ErrorIs(t, registry.Acquire(first), commands.ErrOrderMutationInProgress)
	assert.NoError(t, registry.Acquire(second))

	registry.Release(first)
	assert.NoError(t, registry.Acquire(first))

	// Releasing an unheld order is harmless.
	registry.Release(kernel.NewUUID())
}
