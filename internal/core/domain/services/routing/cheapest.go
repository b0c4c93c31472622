package routing

// CheapestStrategy plans the most circuitous route at the lowest assumed
// speed and the lowest price coefficients. Cost-optimized paths are longer,
// not shorter, so it carries the largest detour factor of the three.
type CheapestStrategy struct {
	profile profile
}

// NewCheapestStrategy creates the price-optimized strategy.
func NewCheapestStrategy() CheapestStrategy {
	return CheapestStrategy{
		profile: profile{
			mode:         ModeCheapest,
			detourFactor: 1.12,
			speedKmh:     52,
			costPerKm:    0.026,
			costPerKg:    1.4,
			variation:    0.75,
			pathSteps:    20,
		},
	}
}

// Mode reports ModeCheapest.
func (s CheapestStrategy) Mode() Mode {
	return ModeCheapest
}

// Plan computes the cheapest route estimate for the request.
func (s CheapestStrategy) Plan(request Request) (Route, error) {
	return s.profile.plan(request)
}
