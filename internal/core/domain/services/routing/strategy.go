package routing

import (
	"fmt"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

// ErrRequestIsNotConstructed is returned when a Request is used before being
// created through NewRequest.
var ErrRequestIsNotConstructed = fmt.Errorf(
	"route request is not constructed, use NewRequest: %w", errs.ErrValueIsRequired)

// ErrStrategyNotRegistered is returned by the Engine when a plan is requested
// for a mode no registered strategy serves.
var ErrStrategyNotRegistered = fmt.Errorf(
	"routing strategy is not registered: %w", errs.ErrObjectNotFound)

// Mode identifies one of the route optimization objectives. Every strategy
// serves exactly one mode, and the Engine keys its registry by it.
type Mode int

const (
	// ModeUnknown is the zero value and never serves a plan.
	ModeUnknown Mode = iota
	// ModeFastest favors the shortest transit time over price.
	ModeFastest
	// ModeCheapest favors the lowest price over transit time.
	ModeCheapest
	// ModeBalanced trades off time against price.
	ModeBalanced
)

func modeStrings() map[Mode]string {
	return map[Mode]string{
		ModeUnknown:  "Unknown",
		ModeFastest:  "Fastest",
		ModeCheapest: "Cheapest",
		ModeBalanced: "Balanced",
	}
}

// ModeFromString parses a mode name. Valid names are "Fastest", "Cheapest"
// and "Balanced"; anything else yields a validation error.
func ModeFromString(s string) (Mode, error) {
	for mode, name := range modeStrings() {
		if mode != ModeUnknown && name == s {
			return mode, nil
		}
	}

	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("mode",
		fmt.Errorf("unknown routing mode %q", s))
}

// Validate checks that the mode is a known non-zero value.
func (m Mode) Validate() error {
	switch m {
	case ModeFastest, ModeCheapest, ModeBalanced:
		return nil
	case ModeUnknown:
		return errs.NewValueIsInvalidError("mode")
	default:
		return errs.NewValueIsInvalidError("mode")
	}
}

// String returns the human readable mode name.
func (m Mode) String() string {
	if s, ok := modeStrings()[m]; ok {
		return s
	}

	return modeStrings()[ModeUnknown]
}

// Request is a value object describing one routing question: where from,
// where to, and how heavy the shipment is. The service level is carried for
// downstream carrier selection and does not affect the plan arithmetic.
type Request struct {
	origin       kernel.GeoPoint
	destination  kernel.GeoPoint
	weight       kernel.Weight
	serviceLevel order.ServiceLevel

	guard guard.ConstructorGuard
}

// NewRequest creates a validated routing request. Both endpoints must be
// constructed geo points and the weight must be a constructed value; a
// degenerate request (NaN or out-of-range coordinates) never reaches a
// strategy because GeoPoint construction already rejects it.
func NewRequest(
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	weight kernel.Weight,
	serviceLevel order.ServiceLevel,
) (Request, error) {
	if err := origin.Validate(); err != nil {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	if err := destination.Validate(); err != nil {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("destination", err)
	}
	if err := weight.Validate(); err != nil {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	if err := serviceLevel.Validate(); err != nil {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("serviceLevel", err)
	}

	return Request{
		origin:       origin,
		destination:  destination,
		weight:       weight,
		serviceLevel: serviceLevel,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the request was created through NewRequest.
func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// Origin returns the start point of the requested route.
func (r Request) Origin() kernel.GeoPoint {
	return r.origin
}

// Destination returns the end point of the requested route.
func (r Request) Destination() kernel.GeoPoint {
	return r.destination
}

// Weight returns the shipment weight.
func (r Request) Weight() kernel.Weight {
	return r.weight
}

// ServiceLevel returns the requested shipping tier.
func (r Request) ServiceLevel() order.ServiceLevel {
	return r.serviceLevel
}

// Route is the outcome of one strategy run: the planned distance, transit
// time, price estimate and a display polyline. Routes are transient and
// recomputed per query, never persisted.
type Route struct {
	// Mode names the strategy that produced the route.
	Mode Mode
	// DistanceKm is the planned travel distance, rounded to 2 decimals.
	DistanceKm float64
	// Duration is the estimated transit time, never below one second.
	Duration time.Duration
	// Cost is the price estimate in the default currency.
	Cost kernel.Money
	// RecommendedCarrier is the carrier code suggested for the route.
	RecommendedCarrier string
	// Path is the synthesized route polyline, origin first.
	Path []kernel.GeoPoint
}

// DurationText renders the transit time as HH:MM:SS. Hours grow past two
// digits for multi-day routes rather than wrapping.
func (r Route) DurationText() string {
	total := int64(r.Duration / time.Second)

	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Strategy plans a route for a request according to one optimization
// objective. Implementations are stateless and safe for concurrent use.
type Strategy interface {
	// Mode reports the objective this strategy serves.
	Mode() Mode
	// Plan computes the route estimate for the request.
	Plan(request Request) (Route, error)
}
