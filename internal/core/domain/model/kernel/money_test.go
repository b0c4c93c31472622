package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/core/domain/model/kernel"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		currency   string
		wantErr    bool
		wantAmount float64
	}{
		{
			name:       "valid amount",
			amount:     37.00,
			currency:   "CNY",
			wantAmount: 37.00,
		},
		{
			name:       "amount rounds to two decimals",
			amount:     43.005,
			currency:   "CNY",
			wantAmount: 43.01,
		},
		{
			name:       "zero amount is valid",
			amount:     0,
			currency:   "CNY",
			wantAmount: 0,
		},
		{
			name:     "negative amount",
			amount:   -1,
			currency: "CNY",
			wantErr:  true,
		},
		{
			name:     "NaN amount",
			amount:   math.NaN(),
			currency: "CNY",
			wantErr:  true,
		},
		{
			name:     "empty currency",
			amount:   10,
			currency: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := kernel.NewMoney(tt.amount, tt.currency)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NoError(t, money.Validate())
			assert.InDelta(t, tt.wantAmount, money.Amount(), 1e-9)
			assert.Equal(t, tt.currency, money.Currency())
		})
	}
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var money kernel.Money
		require.Error(t, money.Validate())
	})
}

func TestMoney_IsLessThan(t *testing.T) {
	t.Run("smaller_amount", func(t *testing.T) {
		cheap, _ := kernel.NewMoney(37.00, "CNY")
		expensive, _ := kernel.NewMoney(43.00, "CNY")

		less, err := cheap.IsLessThan(expensive)
		require.NoError(t, err)
		assert.True(t, less)

		less, err = expensive.IsLessThan(cheap)
		require.NoError(t, err)
		assert.False(t, less)
	})

	t.Run("equal_amounts_are_not_less", func(t *testing.T) {
		a, _ := kernel.NewMoney(37.00, "CNY")
		b, _ := kernel.NewMoney(37.00, "CNY")

		less, err := a.IsLessThan(b)
		require.NoError(t, err)
		assert.False(t, less)
	})

	t.Run("mismatched_currencies_fail", func(t *testing.T) {
		yuan, _ := kernel.NewMoney(10, "CNY")
		dollars, _ := kernel.NewMoney(10, "USD")

		_, err := yuan.IsLessThan(dollars)
		require.Error(t, err)
	})
}

func TestMoney_String(t *testing.T) {
	money, _ := kernel.NewMoney(37, "CNY")
	assert.Equal(t, "37.00 CNY", money.String())
}

func TestRoundMoney(t *testing.T) {
	assert.InDelta(t, 43.0, kernel.RoundMoney(35+2.5*3.2), 1e-9)
	assert.InDelta(t, 37.0, kernel.RoundMoney(30+2.5*2.8), 1e-9)
	assert.InDelta(t, 0.01, kernel.RoundMoney(0.005), 1e-9)
}
