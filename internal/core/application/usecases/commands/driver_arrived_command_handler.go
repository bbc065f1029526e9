package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// DriverArrivedCommandHandler moves the order to Waiting when the assigned
// driver reports arrival at the pickup point.
type DriverArrivedCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewDriverArrivedCommandHandler creates a handler for arrival reports.
func NewDriverArrivedCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) DriverArrivedCommandHandler {
	return DriverArrivedCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the arrival report. Only the assigned driver may report
// arrival, and only from Started.
func (h *DriverArrivedCommandHandler) Handle(ctx context.Context, cmd DriverArrivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if err := requireAssignedDriver(aggregate, cmd.DriverID(), "driverArrived"); err != nil {
				return err
			}
			return aggregate.DriverArrived()
		})
}
