package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// RateOrderCommandHandler records a rating on a completed order.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewRateOrderCommandHandler creates a handler for order ratings.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the rating. Only the order's own client may rate, and only
// a completed order.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if !aggregate.ClientID().IsEqual(cmd.ClientID()) {
				return errs.NewInvalidStateErrorWithCause("rate", aggregate.Status().String(),
					errors.New("order belongs to another client"))
			}
			return aggregate.Rate(cmd.Rating(), cmd.Comment())
		})
}
