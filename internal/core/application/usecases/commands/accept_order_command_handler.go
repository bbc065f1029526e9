package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// AcceptOrderCommandHandler decides the acceptance race. The aggregate
// rejects a second accept once a driver is set; concurrent accepts that both
// load an unassigned order are resolved by the repository's versioned update,
// where the losing write surfaces as a version conflict.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the acceptance attempt. Exactly one of N concurrent
// attempts on the same order succeeds; every loser gets AlreadyAssignedError
// regardless of whether it lost inside the aggregate or on the versioned
// write.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Accept(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionConflict) {
			// the winner's id is unknown here, only that it isn't us
			return errs.NewAlreadyAssignedError(cmd.OrderID().String(), "")
		}
		return err
	}

	events := aggregate.TakeEvents()
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, events)

	return nil
}
