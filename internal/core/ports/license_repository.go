package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// CategoryLicenseRepository defines the persistence contract for driver
// category licenses.
type CategoryLicenseRepository interface {
	// Add persists a new category license.
	Add(ctx context.Context, license *driver.CategoryLicense) error

	// GetAllByDriver retrieves every license held by the given driver.
	// An empty slice means the driver holds no licenses.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*driver.CategoryLicense, error)

	// GetAllByDrivers retrieves licenses for a batch of drivers, keyed by
	// driver identifier. Drivers with no licenses are absent from the map.
	GetAllByDrivers(ctx context.Context, driverIDs []kernel.UUID) (map[kernel.UUID][]*driver.CategoryLicense, error)
}
