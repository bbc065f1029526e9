package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
)

// RejectByDriverCommandHandler abandons an order on the assigned driver's
// behalf. A driver who is not the assigned one is merely declining an open
// offer: that is a logged no-op and never mutates the order, so the offer
// stays visible to everyone else.
type RejectByDriverCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
	logger     *slog.Logger
}

// NewRejectByDriverCommandHandler creates a handler for driver rejections.
func NewRejectByDriverCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher EventDispatcher,
	logger *slog.Logger,
) RejectByDriverCommandHandler {
	return RejectByDriverCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "reject-by-driver"),
	}
}

// Handle processes the rejection or decline.
func (h *RejectByDriverCommandHandler) Handle(ctx context.Context, cmd RejectByDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(),
		func(aggregate *order.Order) error {
			assigned := aggregate.DriverID()
			if assigned == nil || !assigned.IsEqual(cmd.DriverID()) {
				h.logger.Debug("offer declined by unassigned driver",
					"orderId", cmd.OrderID().String(),
					"driverId", cmd.DriverID().String())
				return errNoTransition
			}
			return aggregate.RejectByDriver(cmd.Reason())
		})
}
