package routing

// BalancedStrategy sits between the fastest and cheapest plans on every
// axis: a moderate detour, a moderate speed and intermediate price
// coefficients.
type BalancedStrategy struct {
	profile profile
}

// NewBalancedStrategy creates the time/price trade-off strategy.
func NewBalancedStrategy() BalancedStrategy {
	return BalancedStrategy{
		profile: profile{
			mode:         ModeBalanced,
			detourFactor: 1.05,
			speedKmh:     66,
			costPerKm:    0.034,
			costPerKg:    2.0,
			variation:    0.45,
			pathSteps:    19,
		},
	}
}

// Mode reports ModeBalanced.
func (s BalancedStrategy) Mode() Mode {
	return ModeBalanced
}

// Plan computes the balanced route estimate for the request.
func (s BalancedStrategy) Plan(request Request) (Route, error) {
	return s.profile.plan(request)
}
