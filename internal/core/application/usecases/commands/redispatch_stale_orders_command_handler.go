package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
)

// RedispatchStaleOrdersCommandHandler re-raises the creation event for orders
// stuck in Created, so the dispatch engine offers them to drivers again.
// A failure on one order never blocks the rest of the batch.
type RedispatchStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
	logger     *slog.Logger
}

// NewRedispatchStaleOrdersCommandHandler creates a handler for the
// redispatch sweep.
func NewRedispatchStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher EventDispatcher,
	logger *slog.Logger,
) RedispatchStaleOrdersCommandHandler {
	return RedispatchStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "redispatch"),
	}
}

// Handle re-offers every stale Created order. Each order gets its own
// transaction so one conflicting write cannot roll back the whole sweep.
func (h *RedispatchStaleOrdersCommandHandler) Handle(ctx context.Context, cmd RedispatchStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	stale, err := uow.OrderRepository().GetStaleCreated(ctx, cmd.OlderThan())
	_ = uow.Rollback(ctx)
	if err != nil {
		return err
	}

	for _, stuck := range stale {
		err = runOrderTransition(ctx, h.uowFactory, h.dispatcher, stuck.ID(),
			func(aggregate *order.Order) error {
				return aggregate.Redispatch()
			})
		if err != nil {
			h.logger.Warn("failed to redispatch order",
				"orderId", stuck.ID().String(),
				"error", err)
		}
	}

	if len(stale) > 0 {
		h.logger.Info("redispatch sweep finished", "orders", len(stale))
	}

	return nil
}
