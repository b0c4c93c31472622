package routing

import (
	"fmt"

	"freightdesk/internal/pkg/errs"
)

// Engine is a registry of route strategies keyed by mode. It answers both
// single-mode plans and side-by-side comparisons across every registered
// strategy.
//
// Example usage:
//
//	engine, _ := NewEngine(
//	    NewFastestStrategy(),
//	    NewCheapestStrategy(),
//	    NewBalancedStrategy(),
//	)
//
//	routes, err := engine.Compare(request)
//	if err != nil {
//	    // Handle planning failure
//	    return
//	}
//	// routes holds one result per registered strategy
type Engine struct {
	strategies map[Mode]Strategy
	order      []Mode
}

// NewEngine creates an engine over the given strategies. Every strategy
// must serve a valid mode and no two strategies may serve the same one.
// Comparison results keep the registration order.
func NewEngine(strategies ...Strategy) (*Engine, error) {
	if len(strategies) == 0 {
		return nil, errs.NewValueIsRequiredError("strategies")
	}

	engine := &Engine{
		strategies: make(map[Mode]Strategy, len(strategies)),
		order:      make([]Mode, 0, len(strategies)),
	}

	for _, strategy := range strategies {
		mode := strategy.Mode()
		if err := mode.Validate(); err != nil {
			return nil, err
		}

		if _, exists := engine.strategies[mode]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("strategies",
				fmt.Errorf("duplicate strategy for mode %s", mode))
		}

		engine.strategies[mode] = strategy
		engine.order = append(engine.order, mode)
	}

	return engine, nil
}

// DefaultEngine creates an engine with the three standard strategies in
// Fastest, Cheapest, Balanced order.
func DefaultEngine() (*Engine, error) {
	return NewEngine(
		NewFastestStrategy(),
		NewCheapestStrategy(),
		NewBalancedStrategy(),
	)
}

// Plan runs the strategy registered for the mode over the request.
//
// Returns ErrStrategyNotRegistered when no strategy serves the mode.
func (e *Engine) Plan(mode Mode, request Request) (Route, error) {
	strategy, ok := e.strategies[mode]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrStrategyNotRegistered, mode)
	}

	return strategy.Plan(request)
}

// Compare runs every registered strategy over the same request and returns
// one route per strategy in registration order. Any single strategy failure
// fails the comparison.
func (e *Engine) Compare(request Request) ([]Route, error) {
	routes := make([]Route, 0, len(e.order))
	for _, mode := range e.order {
		route, err := e.strategies[mode].Plan(request)
		if err != nil {
			return nil, err
		}

		routes = append(routes, route)
	}

	return routes, nil
}
