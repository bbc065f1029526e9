package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAddCategoryLicenseCommandIsNotConstructed = errors.New(
	"AddCategoryLicenseCommand must be created via NewAddCategoryLicenseCommand constructor",
)

// AddCategoryLicenseCommand registers a driver's permission to serve a
// category, together with the vehicle used for it. Until a driver holds at
// least one license they are never offered work.
type AddCategoryLicenseCommand struct { //nolint:recvcheck //using for validation
	licenseID kernel.UUID
	driverID  kernel.UUID
	category  kernel.Category
	brand     string
	model     string
	plate     string
	color     string

	guard guard.ConstructorGuard
}

// NewAddCategoryLicenseCommand creates a command to register a category
// license. Identifiers and the category are validated eagerly; vehicle
// fields are validated when the handler builds the license entity.
func NewAddCategoryLicenseCommand(
	licenseID kernel.UUID,
	driverID kernel.UUID,
	category kernel.Category,
	brand string,
	model string,
	plate string,
	color string,
) (AddCategoryLicenseCommand, error) {
	licenseCommand := AddCategoryLicenseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		licenseCommand.setLicenseID(licenseID),
		licenseCommand.setDriverID(driverID),
		licenseCommand.setCategory(category),
	); err != nil {
		return AddCategoryLicenseCommand{}, err
	}

	licenseCommand.brand = brand
	licenseCommand.model = model
	licenseCommand.plate = plate
	licenseCommand.color = color

	return licenseCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCategoryLicenseCommand) Validate() error {
	return c.guard.Validate(ErrAddCategoryLicenseCommandIsNotConstructed)
}

// LicenseID returns the identifier of the new license.
func (c AddCategoryLicenseCommand) LicenseID() kernel.UUID {
	return c.licenseID
}

// DriverID returns the identifier of the licensed driver.
func (c AddCategoryLicenseCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Category returns the licensed category.
func (c AddCategoryLicenseCommand) Category() kernel.Category {
	return c.category
}

// Brand returns the vehicle brand.
func (c AddCategoryLicenseCommand) Brand() string {
	return c.brand
}

// Model returns the vehicle model.
func (c AddCategoryLicenseCommand) Model() string {
	return c.model
}

// Plate returns the vehicle registration plate.
func (c AddCategoryLicenseCommand) Plate() string {
	return c.plate
}

// Color returns the vehicle color.
func (c AddCategoryLicenseCommand) Color() string {
	return c.color
}

func (c *AddCategoryLicenseCommand) setLicenseID(licenseID kernel.UUID) error {
	if err := licenseID.Validate(); err != nil {
		return err
	}

	c.licenseID = licenseID
	return nil
}

func (c *AddCategoryLicenseCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AddCategoryLicenseCommand) setCategory(category kernel.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
