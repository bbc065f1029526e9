package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// RejectByClientCommandHandler cancels an order on the client's behalf.
type RejectByClientCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewRejectByClientCommandHandler creates a handler for client cancellations.
func NewRejectByClientCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) RejectByClientCommandHandler {
	return RejectByClientCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the cancellation. Only the order's own client may cancel;
// cancellation of an already terminal order fails with InvalidStateError.
func (h *RejectByClientCommandHandler) Handle(ctx context.Context, cmd RejectByClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if !aggregate.ClientID().IsEqual(cmd.ClientID()) {
				return errs.NewInvalidStateErrorWithCause("rejectByClient", aggregate.Status().String(),
					errors.New("order belongs to another client"))
			}
			return aggregate.RejectByClient(cmd.Reason())
		})
}
