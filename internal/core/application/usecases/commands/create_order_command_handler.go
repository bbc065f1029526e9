package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Persists the order in "created" status and dispatches the OrderCreated
// event so the dispatch engine can offer it to drivers.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command. Builds the route and pickup
// value objects, persists the aggregate, and dispatches its events after the
// transaction commits. Validation failures surface as value errors; nothing
// is dispatched when persistence fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.buildOrder(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	events := aggregate.TakeEvents()
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, events)

	return nil
}

func (h *CreateOrderCommandHandler) buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	origin, originErr := order.NewRoutePoint(cmd.OriginAddress(), cmd.OriginGeoID())
	destination, destErr := order.NewRoutePoint(cmd.DestAddress(), cmd.DestGeoID())
	pickup, pickupErr := kernel.NewGeoPoint(cmd.PickupLat(), cmd.PickupLng())
	price, priceErr := kernel.NewPrice(cmd.Price())

	if err := errors.Join(originErr, destErr, pickupErr, priceErr); err != nil {
		return nil, err
	}

	return order.NewOrder(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.Category(),
		origin,
		destination,
		pickup,
		price,
		cmd.Comment(),
	)
}
