package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// errNoTransition tells runOrderTransition that the mutate step decided to
// leave the aggregate untouched. Nothing is written, nothing is dispatched,
// and the caller sees success. Used for the unassigned-driver decline, which
// must not bump the version and break someone else's in-flight accept.
var errNoTransition = errors.New("no transition")

// runOrderTransition is the shared load-mutate-save skeleton of the lifecycle
// handlers: load the aggregate inside a transaction, apply the transition,
// persist with the version check, and dispatch the drained events only after
// the commit succeeds.
func runOrderTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	dispatcher EventDispatcher,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		if errors.Is(err, errNoTransition) {
			return nil
		}
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	events := aggregate.TakeEvents()
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	dispatcher.Dispatch(ctx, events)

	return nil
}

// requireAssignedDriver guards transitions only the assigned driver may
// report.
func requireAssignedDriver(aggregate *order.Order, driverID kernel.UUID, operation string) error {
	assigned := aggregate.DriverID()
	if assigned == nil || !assigned.IsEqual(driverID) {
		return errs.NewInvalidStateErrorWithCause(operation, aggregate.Status().String(),
			errors.New("driver is not assigned to this order"))
	}

	return nil
}
