package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
)

func validAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("88 Nanjing Road", "Shanghai", "Shanghai", "200001", "")
	require.NoError(t, err)
	return address
}

func validItems(t *testing.T) []order.Item {
	t.Helper()
	weight, err := kernel.NewWeight(2.5, kernel.Kilograms)
	require.NoError(t, err)
	item, err := order.NewItem("Electronics", 1, weight, nil)
	require.NoError(t, err)
	return []order.Item{item}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	amount, err := kernel.NewMoney(1280, kernel.DefaultCurrency)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-20260301-000042",
		kernel.NewUUID(),
		"Chen Wei",
		"Shanghai",
		validAddress(t),
		validAddress(t),
		order.Normal,
		order.Express,
		amount,
		validItems(t),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_created_status", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.AssignedDriver())
		assert.Empty(t, o.CarrierCode())
		assert.Empty(t, o.TrackingNumber())
		assert.Equal(t, 1, o.Version())
		assert.False(t, o.CreatedAt().IsZero())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_empty_order_number", func(t *testing.T) {
		amount, _ := kernel.NewMoney(100, kernel.DefaultCurrency)
		_, err := order.NewOrder(kernel.NewUUID(), "", kernel.NewUUID(), "Chen Wei",
			"Shanghai", validAddress(t), validAddress(t), order.Normal, order.Express,
			amount, validItems(t))
		require.Error(t, err)
	})

	t.Run("rejects_missing_items", func(t *testing.T) {
		amount, _ := kernel.NewMoney(100, kernel.DefaultCurrency)
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", kernel.NewUUID(), "Chen Wei",
			"Shanghai", validAddress(t), validAddress(t), order.Normal, order.Express,
			amount, nil)
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_address", func(t *testing.T) {
		amount, _ := kernel.NewMoney(100, kernel.DefaultCurrency)
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", kernel.NewUUID(), "Chen Wei",
			"Shanghai", order.Address{}, validAddress(t), order.Normal, order.Express,
			amount, validItems(t))
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ApplyAction(t *testing.T) {
	t.Run("full_lifecycle_to_delivered", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ApplyAction(order.Confirm, auth.Dispatcher))
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.ApplyAction(order.Ship, auth.Dispatcher))
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.ApplyAction(order.Deliver, auth.Driver))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cancel_from_created", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ApplyAction(order.Cancel, auth.Admin))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("deliver_as_dispatcher_is_rejected_despite_legal_transition", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyAction(order.Confirm, auth.Dispatcher))
		require.NoError(t, o.ApplyAction(order.Ship, auth.Dispatcher))

		err := o.ApplyAction(order.Deliver, auth.Dispatcher)
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
		assert.Equal(t, order.Shipped, o.Status(), "failed action must leave status unchanged")
	})

	t.Run("illegal_transition_rejected_despite_authorized_role", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ApplyAction(order.Ship, auth.Dispatcher)
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("terminal_order_rejects_every_action", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyAction(order.Cancel, auth.Admin))

		for _, action := range []order.Action{order.Confirm, order.Ship, order.Deliver, order.Cancel} {
			err := o.ApplyAction(action, auth.Admin)
			require.ErrorIs(t, err, order.ErrActionNotAvailable)
		}
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("invalid_action_fails_validation", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.ApplyAction(order.ActionUnknown, auth.Admin))
	})

	t.Run("successful_action_bumps_version", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.Version()

		require.NoError(t, o.ApplyAction(order.Confirm, auth.Dispatcher))
		assert.Equal(t, before+1, o.Version())
	})
}

func TestOrder_AvailableActions(t *testing.T) {
	o := newTestOrder(t)
	assert.Equal(t, []order.Action{order.Confirm, order.Cancel}, o.AvailableActions(auth.Dispatcher))
	assert.Empty(t, o.AvailableActions(auth.Viewer))
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("assigns_driver", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.AssignDriver(driverID))
		require.NotNil(t, o.AssignedDriver())
		assert.True(t, o.AssignedDriver().IsEqual(driverID))
	})

	t.Run("rejects_assignment_on_terminal_order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyAction(order.Cancel, auth.Admin))

		require.Error(t, o.AssignDriver(kernel.NewUUID()))
	})

	t.Run("rejects_zero_value_driver_id", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.AssignDriver(kernel.UUID{}))
	})
}

func TestOrder_AttachBooking(t *testing.T) {
	t.Run("books_confirmed_order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyAction(order.Confirm, auth.Dispatcher))

		require.NoError(t, o.AttachBooking("SF", "SF0123456789"))
		assert.Equal(t, "SF", o.CarrierCode())
		assert.Equal(t, "SF0123456789", o.TrackingNumber())
	})

	t.Run("rejects_booking_before_confirmation", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.AttachBooking("SF", "SF0123456789"))
	})

	t.Run("rejects_empty_carrier_code", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyAction(order.Confirm, auth.Dispatcher))
		require.Error(t, o.AttachBooking("", "SF0123456789"))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		source := newTestOrder(t)
		driverID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()

		restored, err := order.RestoreOrder(
			source.ID(), source.OrderNumber(), source.CustomerID(), source.CustomerName(),
			source.Region(), source.Origin(), source.Destination(), source.Priority(),
			source.ServiceLevel(), source.Amount(), source.Items(),
			order.Shipped, &driverID, "SF", "SF0123456789", 4, createdAt, updatedAt,
		)
		require.NoError(t, err)

		assert.Equal(t, order.Shipped, restored.Status())
		assert.True(t, restored.AssignedDriver().IsEqual(driverID))
		assert.Equal(t, "SF", restored.CarrierCode())
		assert.Equal(t, 4, restored.Version())
		assert.Equal(t, createdAt, restored.CreatedAt())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		source := newTestOrder(t)
		_, err := order.RestoreOrder(
			source.ID(), source.OrderNumber(), source.CustomerID(), source.CustomerName(),
			source.Region(), source.Origin(), source.Destination(), source.Priority(),
			source.ServiceLevel(), source.Amount(), source.Items(),
			order.StatusUnknown, nil, "", "", 1, time.Now(), time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("rejects_non_positive_version", func(t *testing.T) {
		source := newTestOrder(t)
		_, err := order.RestoreOrder(
			source.ID(), source.OrderNumber(), source.CustomerID(), source.CustomerName(),
			source.Region(), source.Origin(), source.Destination(), source.Priority(),
			source.ServiceLevel(), source.Amount(), source.Items(),
			order.Created, nil, "", "", 0, time.Now(), time.Now(),
		)
		require.Error(t, err)
	})
}
