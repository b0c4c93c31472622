package routing

import (
	"math"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
)

// recommendedCarrierCode is attached to every route. Per-strategy carrier
// selection would need quote data the planner does not hold.
const recommendedCarrierCode = "SF"

// profile holds the tuning constants of one strategy. All three strategies
// share the same plan arithmetic and differ only in these numbers.
type profile struct {
	mode Mode

	// detourFactor inflates the great-circle distance to approximate a
	// road path. 1.0 means the direct distance is used as is.
	detourFactor float64
	// speedKmh is the assumed average travel speed.
	speedKmh float64
	// costPerKm and costPerKg are the linear price coefficients.
	costPerKm float64
	costPerKg float64
	// variation scales the curvature of the synthesized polyline.
	variation float64
	// pathSteps is the number of polyline segments to synthesize.
	pathSteps int
}

// plan runs the shared route arithmetic over the profile constants.
func (p profile) plan(request Request) (Route, error) {
	if err := request.Validate(); err != nil {
		return Route{}, err
	}

	direct, err := request.Origin().DistanceKm(request.Destination())
	if err != nil {
		return Route{}, err
	}

	distance := direct * p.detourFactor

	duration := time.Duration(distance / p.speedKmh * float64(time.Hour))
	if duration < time.Second {
		duration = time.Second
	}

	cost, err := kernel.NewMoney(
		distance*p.costPerKm+request.Weight().Kilograms()*p.costPerKg,
		kernel.DefaultCurrency,
	)
	if err != nil {
		return Route{}, err
	}

	path, err := synthesizePath(request.Origin(), request.Destination(), p.variation, p.pathSteps)
	if err != nil {
		return Route{}, err
	}

	return Route{
		Mode:               p.mode,
		DistanceKm:         math.Round(distance*100) / 100,
		Duration:           duration,
		Cost:               cost,
		RecommendedCarrier: recommendedCarrierCode,
		Path:               path,
	}, nil
}
