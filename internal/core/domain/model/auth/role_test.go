package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/core/domain/model/auth"
)

func TestRole_Validate(t *testing.T) {
	tests := []struct {
		name    string
		role    auth.Role
		wantErr bool
	}{
		{name: "admin is valid", role: auth.Admin},
		{name: "dispatcher is valid", role: auth.Dispatcher},
		{name: "driver is valid", role: auth.Driver},
		{name: "viewer is valid", role: auth.Viewer},
		{name: "unknown is invalid", role: auth.RoleUnknown, wantErr: true},
		{name: "out of range is invalid", role: auth.Role(99), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.role.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    auth.Role
		wantErr bool
	}{
		{input: "Admin", want: auth.Admin},
		{input: "Dispatcher", want: auth.Dispatcher},
		{input: "Driver", want: auth.Driver},
		{input: "Viewer", want: auth.Viewer},
		{input: "admin", wantErr: true},
		{input: "", wantErr: true},
		{input: "Unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := auth.RoleFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
			assert.Equal(t, tt.input, role.String())
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Unknown", auth.RoleUnknown.String())
	assert.Equal(t, "Unknown", auth.Role(42).String())
	assert.Equal(t, "Admin", auth.Admin.String())
}
