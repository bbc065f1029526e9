package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// AddCategoryLicenseCommandHandler persists a new category license for a
// driver. Licenses raise no domain events: the matcher re-reads them on
// every dispatch, so a new license takes effect on the next offer round.
type AddCategoryLicenseCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddCategoryLicenseCommandHandler creates a handler for license
// registration.
func NewAddCategoryLicenseCommandHandler(uowFactory UoWFactory) AddCategoryLicenseCommandHandler {
	return AddCategoryLicenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the license entity and writes it. The unique index on
// driver and category surfaces duplicate registrations as a storage error.
func (h *AddCategoryLicenseCommandHandler) Handle(ctx context.Context, cmd AddCategoryLicenseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	license, err := driver.NewCategoryLicense(
		cmd.LicenseID(),
		cmd.DriverID(),
		cmd.Category(),
		cmd.Brand(),
		cmd.Model(),
		cmd.Plate(),
		cmd.Color(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	if err = uow.CategoryLicenseRepository().Add(ctx, license); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	return uow.Commit(ctx)
}
