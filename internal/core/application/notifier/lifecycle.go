package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/eventbus"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// Lifecycle translates order lifecycle domain events into wire events for the
// interested parties: the ordering client, the assigned driver, and the
// driver fleet watching the open-order feed.
type Lifecycle struct {
	router    *Router
	locations ports.LocationCache
	logger    *slog.Logger
}

// NewLifecycle creates the lifecycle event handlers.
func NewLifecycle(router *Router, locations ports.LocationCache, logger *slog.Logger) *Lifecycle {
	return &Lifecycle{
		router:    router,
		locations: locations,
		logger:    logger.With("component", "lifecycle-notifier"),
	}
}

// Register subscribes every lifecycle handler on the dispatcher.
func (l *Lifecycle) Register(dispatcher *eventbus.Dispatcher) {
	dispatcher.Subscribe(order.EventOrderAccepted, l.HandleOrderAccepted)
	dispatcher.Subscribe(order.EventDriverArrived, l.HandleDriverArrived)
	dispatcher.Subscribe(order.EventOrderStarted, l.HandleOrderStarted)
	dispatcher.Subscribe(order.EventOrderCompleted, l.HandleOrderCompleted)
	dispatcher.Subscribe(order.EventOrderCancelled, l.HandleOrderCancelled)
}

// HandleOrderAccepted tells the client who won the acceptance race, tells the
// rest of the fleet the order is taken, and clears the order from the open
// geo index.
func (l *Lifecycle) HandleOrderAccepted(ctx context.Context, event order.DomainEvent) error {
	accepted, ok := event.(order.OrderAccepted)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Kind())
	}

	payload := Payload{
		OrderID:  accepted.OrderID().String(),
		DriverID: accepted.DriverID.String(),
	}

	l.router.NotifyUser(ctx, accepted.ClientID, EventOrderAccepted, payload)
	l.router.BroadcastToRole(ctx, ports.RoleDriver, EventOrderTaken, payload)

	if err := l.locations.RemoveOrderLocation(ctx, accepted.OrderID(), accepted.Category); err != nil {
		l.logger.Warn("failed to clear order geo entry",
			"orderId", accepted.OrderID().String(),
			"error", err)
	}

	return nil
}

// HandleDriverArrived tells the client the driver is waiting at the pickup
// point.
func (l *Lifecycle) HandleDriverArrived(ctx context.Context, event order.DomainEvent) error {
	arrived, ok := event.(order.DriverArrived)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Kind())
	}

	l.router.NotifyUser(ctx, arrived.ClientID, EventDriverArrived, Payload{
		OrderID:  arrived.OrderID().String(),
		DriverID: arrived.DriverID.String(),
	})

	return nil
}

// HandleOrderStarted tells the client the ride is underway.
func (l *Lifecycle) HandleOrderStarted(ctx context.Context, event order.DomainEvent) error {
	started, ok := event.(order.OrderStarted)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Kind())
	}

	l.router.NotifyUser(ctx, started.ClientID, EventRideStarted, Payload{
		OrderID:  started.OrderID().String(),
		DriverID: started.DriverID.String(),
	})

	return nil
}

// HandleOrderCompleted tells both parties the ride ended and what it cost.
func (l *Lifecycle) HandleOrderCompleted(ctx context.Context, event order.DomainEvent) error {
	completed, ok := event.(order.OrderCompleted)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Kind())
	}

	payload := Payload{
		OrderID:  completed.OrderID().String(),
		DriverID: completed.DriverID.String(),
		Price:    completed.Price.Amount(),
	}

	l.router.NotifyUser(ctx, completed.ClientID, EventRideEnded, payload)
	l.router.NotifyUser(ctx, completed.DriverID, EventRideEnded, payload)

	return nil
}

// HandleOrderCancelled tells the affected parties the order is gone, tells
// the fleet to drop it from their feeds, and clears the order geo entry.
func (l *Lifecycle) HandleOrderCancelled(ctx context.Context, event order.DomainEvent) error {
	cancelled, ok := event.(order.OrderCancelled)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Kind())
	}

	payload := Payload{
		OrderID: cancelled.OrderID().String(),
		Reason:  cancelled.Reason,
	}

	l.router.NotifyUser(ctx, cancelled.ClientID, EventOrderCancelled, payload)
	if cancelled.DriverID != nil {
		l.router.NotifyUser(ctx, *cancelled.DriverID, EventOrderCancelled, payload)
	}

	l.router.BroadcastToRole(ctx, ports.RoleDriver, EventOrderDeleted, Payload{
		OrderID: cancelled.OrderID().String(),
	})

	if err := l.locations.RemoveOrderLocation(ctx, cancelled.OrderID(), cancelled.Category); err != nil {
		l.logger.Warn("failed to clear order geo entry",
			"orderId", cancelled.OrderID().String(),
			"error", err)
	}

	return nil
}
