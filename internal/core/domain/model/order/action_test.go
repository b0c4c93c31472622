package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/order"
)

func TestAction_TargetStatus(t *testing.T) {
	assert.Equal(t, order.Confirmed, order.Confirm.TargetStatus())
	assert.Equal(t, order.Shipped, order.Ship.TargetStatus())
	assert.Equal(t, order.Delivered, order.Deliver.TargetStatus())
	assert.Equal(t, order.Cancelled, order.Cancel.TargetStatus())
	assert.Equal(t, order.StatusUnknown, order.ActionUnknown.TargetStatus())
}

func TestAction_IsAllowedFor(t *testing.T) {
	tests := []struct {
		name   string
		action order.Action
		role   auth.Role
		want   bool
	}{
		{name: "admin can confirm", action: order.Confirm, role: auth.Admin, want: true},
		{name: "dispatcher can confirm", action: order.Confirm, role: auth.Dispatcher, want: true},
		{name: "driver cannot confirm", action: order.Confirm, role: auth.Driver, want: false},
		{name: "viewer cannot confirm", action: order.Confirm, role: auth.Viewer, want: false},
		{name: "dispatcher can ship", action: order.Ship, role: auth.Dispatcher, want: true},
		{name: "driver can deliver", action: order.Deliver, role: auth.Driver, want: true},
		{name: "admin can deliver", action: order.Deliver, role: auth.Admin, want: true},
		{name: "dispatcher cannot deliver", action: order.Deliver, role: auth.Dispatcher, want: false},
		{name: "dispatcher can cancel", action: order.Cancel, role: auth.Dispatcher, want: true},
		{name: "driver cannot cancel", action: order.Cancel, role: auth.Driver, want: false},
		{name: "unknown role is denied", action: order.Confirm, role: auth.RoleUnknown, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.IsAllowedFor(tt.role))
		})
	}
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		name   string
		status order.Status
		role   auth.Role
		want   []order.Action
	}{
		{
			name:   "created order for dispatcher",
			status: order.Created,
			role:   auth.Dispatcher,
			want:   []order.Action{order.Confirm, order.Cancel},
		},
		{
			name:   "created order for admin",
			status: order.Created,
			role:   auth.Admin,
			want:   []order.Action{order.Confirm, order.Cancel},
		},
		{
			name:   "created order for driver has nothing",
			status: order.Created,
			role:   auth.Driver,
			want:   []order.Action{},
		},
		{
			name:   "confirmed order for dispatcher",
			status: order.Confirmed,
			role:   auth.Dispatcher,
			want:   []order.Action{order.Ship, order.Cancel},
		},
		{
			name:   "shipped order for driver",
			status: order.Shipped,
			role:   auth.Driver,
			want:   []order.Action{order.Deliver},
		},
		{
			// Shipped -> Delivered is reachable state-wise, but Deliver
			// requires Admin or Driver. Reachability alone is insufficient.
			name:   "shipped order for dispatcher has nothing",
			status: order.Shipped,
			role:   auth.Dispatcher,
			want:   []order.Action{},
		},
		{
			name:   "shipped order for admin",
			status: order.Shipped,
			role:   auth.Admin,
			want:   []order.Action{order.Deliver},
		},
		{
			name:   "viewer never has actions",
			status: order.Created,
			role:   auth.Viewer,
			want:   []order.Action{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.AvailableActions(tt.status, tt.role))
		})
	}
}

func TestAvailableActions_TerminalStatesYieldNothingForEveryRole(t *testing.T) {
	roles := []auth.Role{auth.Admin, auth.Dispatcher, auth.Driver, auth.Viewer, auth.RoleUnknown}
	for _, status := range []order.Status{order.Delivered, order.Cancelled} {
		for _, role := range roles {
			assert.Empty(t, order.AvailableActions(status, role),
				"status %s, role %s", status, role)
		}
	}
}

func TestAvailableActions_EveryReturnedActionSatisfiesBothConditions(t *testing.T) {
	statuses := []order.Status{order.Created, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled}
	roles := []auth.Role{auth.Admin, auth.Dispatcher, auth.Driver, auth.Viewer}

	for _, status := range statuses {
		for _, role := range roles {
			for _, action := range order.AvailableActions(status, role) {
				assert.True(t, status.CanTransitionTo(action.TargetStatus()),
					"action %s returned for %s but target unreachable", action, status)
				assert.True(t, action.IsAllowedFor(role),
					"action %s returned for %s but role unauthorized", action, role)
			}
		}
	}
}

func TestActionFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    order.Action
		wantErr bool
	}{
		{input: "Confirm", want: order.Confirm},
		{input: "Ship", want: order.Ship},
		{input: "Deliver", want: order.Deliver},
		{input: "Cancel", want: order.Cancel},
		{input: "confirm", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			action, err := order.ActionFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, action)
			assert.Equal(t, tt.input, action.String())
		})
	}
}
