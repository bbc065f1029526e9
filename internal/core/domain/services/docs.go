// Package services provides domain services that implement business rules
// spanning multiple domain entities in the dispatch system. It holds logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - Matcher: A domain service filtering nearby drivers to the ones eligible
//     to serve an order
//
// Domain services stay pure: they perform no I/O, so orchestration such as
// geo lookups and notification fan-out lives in the application layer.
package services
