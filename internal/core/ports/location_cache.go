package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// NearbyDriver is a driver position returned by a proximity search,
// ordered nearest first.
type NearbyDriver struct {
	DriverID   kernel.UUID
	Location   kernel.GeoPoint
	DistanceKm float64
}

// LocationCache defines the geospatial index contract for live driver
// positions and open order pickup points.
//
// The cache is best-effort: a driver's last reported position may be stale,
// and entries survive until explicitly removed. Consumers treat its contents
// as hints for matching, never as authoritative state.
type LocationCache interface {
	// UpdateDriverLocation upserts the driver's last known position.
	UpdateDriverLocation(ctx context.Context, driverID kernel.UUID, location kernel.GeoPoint) error

	// RemoveDriverLocation drops the driver's position from the index.
	// Removing an absent driver is not an error.
	RemoveDriverLocation(ctx context.Context, driverID kernel.UUID) error

	// FindNearestDrivers returns up to limit drivers within radiusKm of the
	// given point, nearest first.
	FindNearestDrivers(ctx context.Context, from kernel.GeoPoint, radiusKm float64, limit int) ([]NearbyDriver, error)

	// UpdateOrderLocation upserts an open order's pickup point in the
	// per-category order index.
	UpdateOrderLocation(ctx context.Context, orderID kernel.UUID, category kernel.Category, location kernel.GeoPoint) error

	// RemoveOrderLocation drops the order's pickup point from the
	// per-category order index. Removing an absent order is not an error.
	RemoveOrderLocation(ctx context.Context, orderID kernel.UUID, category kernel.Category) error
}
