// Package kernel provides core domain primitives for the freightdesk brokerage.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A validated geographic coordinate pair with great-circle distance
//   - Money: A monetary amount with currency, rounded to two decimal places
//   - Weight: A package weight with unit-aware normalization to kilograms
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
