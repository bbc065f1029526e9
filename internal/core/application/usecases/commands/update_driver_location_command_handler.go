package commands

import (
	"context"

	"dispatch/internal/core/application/notifier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// LocationNotifier routes live location updates to interested users.
// Satisfied by notifier.Router.
type LocationNotifier interface {
	NotifyUser(ctx context.Context, userID kernel.UUID, event string, payload notifier.Payload)
}

// UpdateDriverLocationCommandHandler upserts the driver's position in the
// geospatial index, and while the driver is serving an active order streams
// the position to that order's client as a locationUpdate event.
type UpdateDriverLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	locations  ports.LocationCache
	router     LocationNotifier
}

// NewUpdateDriverLocationCommandHandler creates a handler for driver
// position reports.
func NewUpdateDriverLocationCommandHandler(
	uowFactory OrderUoWFactory,
	locations ports.LocationCache,
	router LocationNotifier,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
		router:     router,
	}
}

// Handle processes the position report. The index write is the primary
// effect; streaming to the client is best-effort and failures there never
// surface to the driver.
func (h *UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.locations.UpdateDriverLocation(ctx, cmd.DriverID(), cmd.Location()); err != nil {
		return err
	}

	active, err := h.activeOrder(ctx, cmd.DriverID())
	if err != nil || active == nil {
		return err
	}

	h.router.NotifyUser(ctx, active.ClientID(), notifier.EventLocationUpdate, notifier.Payload{
		OrderID:  active.ID().String(),
		DriverID: cmd.DriverID().String(),
		Lat:      cmd.Location().Lat(),
		Lng:      cmd.Location().Lng(),
	})

	return nil
}

// activeOrder finds the driver's current non-terminal order, if any.
func (h *UpdateDriverLocationCommandHandler) activeOrder(ctx context.Context, driverID kernel.UUID) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.OrderRepository().GetAll(ctx, ports.OrderFilter{
		DriverID:    &driverID,
		StatusNotIn: order.TerminalStatuses(),
	})
	if err != nil {
		return nil, err
	}

	if len(active) == 0 {
		return nil, nil
	}

	return active[0], nil
}
