package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/core/domain/model/kernel"
)

func TestNewWeight(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    kernel.WeightUnit
		wantErr bool
	}{
		{
			name:  "valid kilograms",
			value: 2.5,
			unit:  kernel.Kilograms,
		},
		{
			name:  "valid jin",
			value: 1,
			unit:  kernel.Jin,
		},
		{
			name:    "zero value",
			value:   0,
			unit:    kernel.Kilograms,
			wantErr: true,
		},
		{
			name:    "negative value",
			value:   -2,
			unit:    kernel.Kilograms,
			wantErr: true,
		},
		{
			name:    "NaN value",
			value:   math.NaN(),
			unit:    kernel.Kilograms,
			wantErr: true,
		},
		{
			name:    "unknown unit",
			value:   1,
			unit:    kernel.WeightUnitUnknown,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight, err := kernel.NewWeight(tt.value, tt.unit)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NoError(t, weight.Validate())
			assert.InDelta(t, tt.value, weight.Value(), 0)
			assert.Equal(t, tt.unit, weight.Unit())
		})
	}
}

func TestWeight_Kilograms(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		unit   kernel.WeightUnit
		wantKg float64
	}{
		{name: "1 jin is half a kilogram", value: 1, unit: kernel.Jin, wantKg: 0.5},
		{name: "2 kilograms stay 2 kilograms", value: 2, unit: kernel.Kilograms, wantKg: 2},
		{name: "2000 grams are 2 kilograms", value: 2000, unit: kernel.Grams, wantKg: 2},
		{name: "1 pound converts", value: 1, unit: kernel.Pounds, wantKg: 0.45359237},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight, err := kernel.NewWeight(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, weight.Kilograms(), 1e-9)
		})
	}
}

func TestWeight_EquivalentWeightsNormalizeIdentically(t *testing.T) {
	grams, err := kernel.NewWeight(2000, kernel.Grams)
	require.NoError(t, err)
	kilos, err := kernel.NewWeight(2, kernel.Kilograms)
	require.NoError(t, err)
	jin, err := kernel.NewWeight(4, kernel.Jin)
	require.NoError(t, err)

	assert.InDelta(t, kilos.Kilograms(), grams.Kilograms(), 1e-9)
	assert.InDelta(t, kilos.Kilograms(), jin.Kilograms(), 1e-9)
}

func TestWeightUnitFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    kernel.WeightUnit
		wantErr bool
	}{
		{input: "Kg", want: kernel.Kilograms},
		{input: "G", want: kernel.Grams},
		{input: "Jin", want: kernel.Jin},
		{input: "Lb", want: kernel.Pounds},
		{input: "kg", wantErr: true},
		{input: "", wantErr: true},
		{input: "Stone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			unit, err := kernel.WeightUnitFromString(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, unit)
			assert.Equal(t, tt.input, unit.String())
		})
	}
}

func TestWeightUnit_String(t *testing.T) {
	assert.Equal(t, "Unknown", kernel.WeightUnitUnknown.String())
	assert.Equal(t, "Kg", kernel.Kilograms.String())
}
