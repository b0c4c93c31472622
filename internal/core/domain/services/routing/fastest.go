package routing

// FastestStrategy plans the most direct route at the highest assumed speed
// and the highest price coefficients. Its polyline is the straightest of
// the three strategies.
type FastestStrategy struct {
	profile profile
}

// NewFastestStrategy creates the time-optimized strategy.
func NewFastestStrategy() FastestStrategy {
	return FastestStrategy{
		profile: profile{
			mode:         ModeFastest,
			detourFactor: 1.0,
			speedKmh:     78,
			costPerKm:    0.042,
			costPerKg:    2.6,
			variation:    0.15,
			pathSteps:    18,
		},
	}
}

// Mode reports ModeFastest.
func (s FastestStrategy) Mode() Mode {
	return ModeFastest
}

// Plan computes the fastest route estimate for the request.
func (s FastestStrategy) Plan(request Request) (Route, error) {
	return s.profile.plan(request)
}
