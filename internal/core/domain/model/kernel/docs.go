// Package kernel contains the shared value objects of the dispatch domain:
// identifiers, geo coordinates, monetary amounts, and service categories.
//
// All types in this package are immutable value objects. Their zero values are
// invalid; instances must be created through the provided constructors, which
// enforce the business invariants (coordinate bounds, non-negative amounts,
// known categories). Validate methods detect zero values that bypassed a
// constructor, following the constructor guard pattern from internal/pkg/guard.
package kernel
