// Package order provides the Order aggregate root and its lifecycle state
// machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, driver assignment, price,
//     rating, and lifecycle transitions
//   - Status: a state machine enforcing the fixed transition sequence
//     Created -> Started -> Waiting -> Ongoing -> Completed with terminal
//     rejected branches from every non-terminal state
//   - DomainEvent and the concrete event types raised on each transition
//   - RoutePoint: the origin/destination value object
//
// Key business rules:
//   - Driver assignment is write-once; a lost acceptance race surfaces as
//     AlreadyAssignedError
//   - Terminal statuses accept no further transitions
//   - Ratings are only valid on completed orders and must lie within [1, 5]
//   - Orders are never deleted; rejected orders are retained for history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
