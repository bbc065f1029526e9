// Package licenserepo provides the GORM-backed repository for driver
// category licenses.
package licenserepo

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryLicenseDTO represents the database structure for persisting
// category licenses. A driver holds at most one license per category,
// enforced by the composite unique index.
type CategoryLicenseDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID uuid.UUID `gorm:"type:uuid;index:idx_licenses_driver_category,unique"`
	Category string    `gorm:"type:varchar(32);index:idx_licenses_driver_category,unique"`
	Brand    string    `gorm:"type:varchar(64)"`
	Model    string    `gorm:"type:varchar(64)"`
	Plate    string    `gorm:"type:varchar(16)"`
	Color    string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for license entities.
func (CategoryLicenseDTO) TableName() string {
	return "category_licenses"
}

// fromDomain converts a license entity to its database representation.
func fromDomain(license *driver.CategoryLicense) CategoryLicenseDTO {
	return CategoryLicenseDTO{
		ID:       license.ID().Bytes(),
		DriverID: license.DriverID().Bytes(),
		Category: license.Category().String(),
		Brand:    license.Brand(),
		Model:    license.Model(),
		Plate:    license.Plate(),
		Color:    license.Color(),
	}
}

// toDomain converts a database row back into a license entity.
func toDomain(dto CategoryLicenseDTO) (*driver.CategoryLicense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	category, err := kernel.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return driver.RestoreCategoryLicense(id, driverID, category, dto.Brand, dto.Model, dto.Plate, dto.Color)
}
