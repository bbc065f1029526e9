// Package ports defines the contracts between the dispatch core and
// infrastructure: repositories, the location cache, the presence registry,
// connection transports, and the push-notification sink. These interfaces
// establish dependency inversion so the core stays free of storage and
// transport concerns.
package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderFilter narrows OrderRepository.GetAll results. Nil pointer fields are
// ignored; StatusNotIn excludes orders in any of the listed statuses.
type OrderFilter struct {
	ClientID    *kernel.UUID
	DriverID    *kernel.UUID
	Category    *kernel.Category
	StatusNotIn []order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
//
// Update performs a conditional write against the aggregate's loaded version
// and returns VersionConflictError when the row changed underneath. This
// realizes the at-most-one-acceptance invariant without an in-process lock:
// two concurrent accepts load the same version, and only one write succeeds.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// version loaded with the aggregate. Returns VersionConflictError if the
	// stored version differs.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders matching the filter.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// GetStaleCreated retrieves orders still in Created status whose last
	// update is older than the given age. Used by the redispatch job.
	GetStaleCreated(ctx context.Context, olderThan time.Duration) ([]*order.Order, error)
}
