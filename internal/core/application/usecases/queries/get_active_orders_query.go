// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate layer and read projection rows straight
// from the database.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that has not reached a terminal
// status. Used by operator dashboards and the driver offer feed.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for all non-terminal orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderSummary is the projection row shared by the order list queries.
// DriverID is nil while no driver has accepted; EndedAt and Rating are nil
// until the order reaches the matching state.
type OrderSummary struct {
	ID            kernel.UUID
	ClientID      kernel.UUID
	DriverID      *kernel.UUID
	Category      string
	Status        string
	OriginAddress string
	DestAddress   string
	PickupLat     float64
	PickupLng     float64
	Price         int64
	Rating        *int
	CreatedAt     time.Time
	EndedAt       *time.Time
}
