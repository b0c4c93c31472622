// Package carriers implements the carrier adapters and their factory.
//
// Each adapter encapsulates one carrier's pricing and booking rules behind
// the uniform ports.CarrierAdapter contract. The factory resolves carrier
// codes to adapters and fixes the listing order that quote aggregation
// uses for tie-breaking.
package carriers

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// Factory resolves carrier codes to adapter instances.
//
// The registered order is fixed: SF Express first, JD Logistics second.
// ListAll preserves it, which makes quote tie-breaking deterministic.
type Factory struct {
	adapters []ports.CarrierAdapter
	byCode   map[string]ports.CarrierAdapter
}

// NewFactory creates a factory over the two registered carriers.
func NewFactory() *Factory {
	adapters := []ports.CarrierAdapter{
		NewSFExpressAdapter(),
		NewJDLogisticsAdapter(),
	}

	byCode := make(map[string]ports.CarrierAdapter, len(adapters))
	for _, adapter := range adapters {
		byCode[adapter.Metadata().Code] = adapter
	}

	return &Factory{adapters: adapters, byCode: byCode}
}

// Create resolves a carrier code to its adapter. Codes are matched case
// insensitively; an unknown code yields a validation error.
func (f *Factory) Create(code string) (ports.CarrierAdapter, error) {
	adapter, ok := f.byCode[strings.ToUpper(code)]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrierCode",
			fmt.Errorf("no carrier adapter found for code %q", code))
	}

	return adapter, nil
}

// ListAll returns every registered adapter in registration order.
func (f *Factory) ListAll() []ports.CarrierAdapter {
	listed := make([]ports.CarrierAdapter, len(f.adapters))
	copy(listed, f.adapters)

	return listed
}

// trackingNumber builds a carrier-prefixed tracking number with ten random
// digits, zero padded.
func trackingNumber(code string) string {
	return fmt.Sprintf("%s%010d", code, rand.Int64N(10_000_000_000))
}
