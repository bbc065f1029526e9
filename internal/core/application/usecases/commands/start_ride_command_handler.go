package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// StartRideCommandHandler moves the order to Ongoing when the assigned driver
// reports the ride started.
type StartRideCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewStartRideCommandHandler creates a handler for ride-start reports.
func NewStartRideCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) StartRideCommandHandler {
	return StartRideCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the ride-start report. Only the assigned driver may start
// the ride, and only from Waiting.
func (h *StartRideCommandHandler) Handle(ctx context.Context, cmd StartRideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if err := requireAssignedDriver(aggregate, cmd.DriverID(), "startRide"); err != nil {
				return err
			}
			return aggregate.Start()
		})
}
