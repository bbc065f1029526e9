// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order lifecycle:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input rejected before any state mutation
//   - ObjectNotFoundError: a referenced order, driver, or license is absent
//   - InvalidStateError: an operation attempted from a status that forbids it
//   - AlreadyAssignedError: a lost driver-assignment race
//   - VersionConflictError: an optimistic-concurrency write against a stale version
//   - DependencyError: a failed call to an external port (cache, sink, transport)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Aggregate and state-machine errors propagate synchronously to the caller of
// the lifecycle operation. Fan-out errors are swallowed at the recipient level
// and surfaced only through logs.
package errs
