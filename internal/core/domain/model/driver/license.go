package driver

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrLicenseIsNotConstructed is returned when a CategoryLicense instance was
// not created through the NewCategoryLicense factory method.
var ErrLicenseIsNotConstructed = errors.New(
	"CategoryLicense must be created via NewCategoryLicense constructor")

// CategoryLicense is a driver's registration for one service category. A
// driver must hold a license for an order's category before they may be
// matched and notified for it. One driver may hold multiple licenses, one per
// category; duplicate licenses for the same category are rejected at the
// persistence layer by a unique constraint.
type CategoryLicense struct {
	id       kernel.UUID
	driverID kernel.UUID
	category kernel.Category
	brand    string
	model    string
	plate    string
	color    string

	isConstructed bool
}

// NewCategoryLicense creates a validated license. Brand, model, and plate are
// required; color is optional.
func NewCategoryLicense(
	id kernel.UUID,
	driverID kernel.UUID,
	category kernel.Category,
	brand string,
	model string,
	plate string,
	color string,
) (*CategoryLicense, error) {
	license := &CategoryLicense{
		isConstructed: true,
	}

	if err := errors.Join(
		license.setID(id),
		license.setDriverID(driverID),
		license.setCategory(category),
		license.setBrand(brand),
		license.setModel(model),
		license.setPlate(plate),
	); err != nil {
		return nil, err
	}

	license.color = color
	return license, nil
}

// RestoreCategoryLicense rehydrates a license from persistence.
func RestoreCategoryLicense(
	id kernel.UUID,
	driverID kernel.UUID,
	category kernel.Category,
	brand string,
	model string,
	plate string,
	color string,
) (*CategoryLicense, error) {
	return NewCategoryLicense(id, driverID, category, brand, model, plate, color)
}

// Validate ensures the license was created through NewCategoryLicense.
func (l *CategoryLicense) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLicenseIsNotConstructed
	}
	return nil
}

// ID returns the license identifier.
func (l *CategoryLicense) ID() kernel.UUID {
	return l.id
}

// DriverID returns the owning driver's identifier.
func (l *CategoryLicense) DriverID() kernel.UUID {
	return l.driverID
}

// Category returns the service category the license covers.
func (l *CategoryLicense) Category() kernel.Category {
	return l.category
}

// Brand returns the vehicle brand.
func (l *CategoryLicense) Brand() string {
	return l.brand
}

// Model returns the vehicle model.
func (l *CategoryLicense) Model() string {
	return l.model
}

// Plate returns the vehicle plate number.
func (l *CategoryLicense) Plate() string {
	return l.plate
}

// Color returns the vehicle color, possibly empty.
func (l *CategoryLicense) Color() string {
	return l.color
}

// Covers reports whether the license permits serving the given category.
func (l *CategoryLicense) Covers(category kernel.Category) bool {
	return l.category == category
}

func (l *CategoryLicense) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *CategoryLicense) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	l.driverID = driverID
	return nil
}

func (l *CategoryLicense) setCategory(category kernel.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	l.category = category
	return nil
}

func (l *CategoryLicense) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	l.brand = brand
	return nil
}

func (l *CategoryLicense) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	l.model = model
	return nil
}

func (l *CategoryLicense) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	l.plate = plate
	return nil
}
