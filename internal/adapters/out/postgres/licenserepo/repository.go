package licenserepo

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryLicenseRepository implements CategoryLicenseRepository using GORM.
type GormCategoryLicenseRepository struct {
	db *gorm.DB
}

var _ ports.CategoryLicenseRepository = (*GormCategoryLicenseRepository)(nil)

// NewGormCategoryLicenseRepository creates a new GORM license repository.
func NewGormCategoryLicenseRepository(db *gorm.DB) *GormCategoryLicenseRepository {
	return &GormCategoryLicenseRepository{
		db: db,
	}
}

// Add saves a new license to the database.
func (r *GormCategoryLicenseRepository) Add(ctx context.Context, license *driver.CategoryLicense) error {
	if err := license.Validate(); err != nil {
		return err
	}

	dto := fromDomain(license)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByDriver retrieves every license held by the given driver.
func (r *GormCategoryLicenseRepository) GetAllByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*driver.CategoryLicense, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CategoryLicenseDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "driver_id = ?", driverID.Bytes()).Error; err != nil {
		return nil, err
	}

	licenses := make([]*driver.CategoryLicense, 0, len(dtos))
	for _, dto := range dtos {
		license, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, license)
	}

	return licenses, nil
}

// GetAllByDrivers retrieves licenses for a batch of drivers in one query,
// keyed by driver identifier. Drivers holding no licenses are absent from
// the result.
func (r *GormCategoryLicenseRepository) GetAllByDrivers(
	ctx context.Context,
	driverIDs []kernel.UUID,
) (map[kernel.UUID][]*driver.CategoryLicense, error) {
	result := make(map[kernel.UUID][]*driver.CategoryLicense, len(driverIDs))
	if len(driverIDs) == 0 {
		return result, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(driverIDs))
	for _, id := range driverIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []CategoryLicenseDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "driver_id IN (?)", rawIDs).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		license, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result[license.DriverID()] = append(result[license.DriverID()], license)
	}

	return result, nil
}
