package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/core/domain/model/order"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{name: "created is valid", status: order.Created},
		{name: "confirmed is valid", status: order.Confirmed},
		{name: "shipped is valid", status: order.Shipped},
		{name: "delivered is valid", status: order.Delivered},
		{name: "cancelled is valid", status: order.Cancelled},
		{name: "unknown is invalid", status: order.StatusUnknown, wantErr: true},
		{name: "out of range is invalid", status: order.Status(99), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from order.Status
		to   order.Status
		want bool
	}{
		{name: "created to confirmed", from: order.Created, to: order.Confirmed, want: true},
		{name: "created to cancelled", from: order.Created, to: order.Cancelled, want: true},
		{name: "created to shipped is illegal", from: order.Created, to: order.Shipped, want: false},
		{name: "created to delivered is illegal", from: order.Created, to: order.Delivered, want: false},
		{name: "confirmed to shipped", from: order.Confirmed, to: order.Shipped, want: true},
		{name: "confirmed to cancelled", from: order.Confirmed, to: order.Cancelled, want: true},
		{name: "confirmed to delivered is illegal", from: order.Confirmed, to: order.Delivered, want: false},
		{name: "shipped to delivered", from: order.Shipped, to: order.Delivered, want: true},
		{name: "shipped to cancelled is illegal", from: order.Shipped, to: order.Cancelled, want: false},
		{name: "delivered is terminal", from: order.Delivered, to: order.Cancelled, want: false},
		{name: "cancelled is terminal", from: order.Cancelled, to: order.Confirmed, want: false},
		{name: "no self transition", from: order.Created, to: order.Created, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_NextStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status order.Status
		want   []order.Status
	}{
		{name: "created", status: order.Created, want: []order.Status{order.Confirmed, order.Cancelled}},
		{name: "confirmed", status: order.Confirmed, want: []order.Status{order.Shipped, order.Cancelled}},
		{name: "shipped", status: order.Shipped, want: []order.Status{order.Delivered}},
		{name: "delivered has none", status: order.Delivered, want: []order.Status{}},
		{name: "cancelled has none", status: order.Cancelled, want: []order.Status{}},
		{name: "unknown has none", status: order.StatusUnknown, want: []order.Status{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, tt.status.NextStatuses())
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	// Unknown has no transitions but is invalid, not terminal.
	assert.False(t, order.StatusUnknown.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal_transition_returns_target", func(t *testing.T) {
		status, err := order.Created.TransitionTo(order.Confirmed)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, status)
	})

	t.Run("illegal_transition_fails", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Delivered)
		require.Error(t, err)
	})

	t.Run("transition_to_invalid_status_fails", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.StatusUnknown)
		require.Error(t, err)
	})
}

func TestStatus_Rank(t *testing.T) {
	// Lifecycle ordering, not alphabetical: Cancelled sorts last even
	// though it precedes Confirmed alphabetically.
	assert.Less(t, order.Created.Rank(), order.Confirmed.Rank())
	assert.Less(t, order.Confirmed.Rank(), order.Shipped.Rank())
	assert.Less(t, order.Shipped.Rank(), order.Delivered.Rank())
	assert.Less(t, order.Delivered.Rank(), order.Cancelled.Rank())
	assert.Greater(t, order.StatusUnknown.Rank(), order.Cancelled.Rank())
}

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    order.Status
		wantErr bool
	}{
		{input: "Created", want: order.Created},
		{input: "Confirmed", want: order.Confirmed},
		{input: "Shipped", want: order.Shipped},
		{input: "Delivered", want: order.Delivered},
		{input: "Cancelled", want: order.Cancelled},
		{input: "created", wantErr: true},
		{input: "Unknown", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := order.StatusFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.input, status.String())
		})
	}
}
