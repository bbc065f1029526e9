package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CompleteRideCommandHandler moves the order to Completed when the assigned
// driver reports the ride ended.
type CompleteRideCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewCompleteRideCommandHandler creates a handler for ride-completion reports.
func NewCompleteRideCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) CompleteRideCommandHandler {
	return CompleteRideCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the ride-completion report. Only the assigned driver may
// complete the ride, and only from Ongoing.
func (h *CompleteRideCommandHandler) Handle(ctx context.Context, cmd CompleteRideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if err := requireAssignedDriver(aggregate, cmd.DriverID(), "completeRide"); err != nil {
				return err
			}
			return aggregate.RideEnded()
		})
}
