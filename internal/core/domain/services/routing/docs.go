// Package routing plans delivery routes between two geographic points.
//
// Three interchangeable strategies serve the same contract: Fastest plans
// the most direct route at the highest speed and price, Cheapest the most
// circuitous at the lowest, Balanced in between. Every strategy produces a
// distance, a transit time, a price estimate and a synthesized polyline for
// map display. The Engine registry resolves a mode to its strategy and runs
// side-by-side comparisons.
//
// Strategies are pure and stateless: the same request always yields the
// same route, and no strategy performs I/O.
package routing
