// Package eventbus delivers domain events raised by aggregates to the
// application-layer handlers subscribed to them. Dispatch is synchronous and
// in-process: command handlers drain events after a successful commit and
// hand them to the dispatcher.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
)

// HandlerFunc reacts to a single domain event. Handlers must tolerate
// redelivery: the same event may be dispatched more than once.
type HandlerFunc func(ctx context.Context, event order.DomainEvent) error

// Dispatcher routes domain events to subscribed handlers by event kind.
//
// Subscribe is not safe for concurrent use with Dispatch; the composition
// root registers all handlers before the first event flows.
type Dispatcher struct {
	handlers map[order.EventKind][]HandlerFunc
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher with no subscriptions.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[order.EventKind][]HandlerFunc),
		logger:   logger.With("component", "eventbus"),
	}
}

// Subscribe registers a handler for the given event kind. Several handlers
// may subscribe to the same kind; they run in registration order.
func (d *Dispatcher) Subscribe(kind order.EventKind, handler HandlerFunc) {
	d.handlers[kind] = append(d.handlers[kind], handler)
}

// Dispatch delivers each event to every handler subscribed to its kind.
// A failing or panicking handler is logged and skipped; it never prevents
// the remaining handlers or events from running. Events with no subscribers
// are dropped silently.
func (d *Dispatcher) Dispatch(ctx context.Context, events []order.DomainEvent) {
	for _, event := range events {
		for _, handler := range d.handlers[event.Kind()] {
			d.deliver(ctx, event, handler)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event order.DomainEvent, handler HandlerFunc) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event handler panicked",
				"event", event.Kind().String(),
				"orderId", event.OrderID().String(),
				"panic", fmt.Sprintf("%v", r))
		}
	}()

	if err := handler(ctx, event); err != nil {
		d.logger.Error("event handler failed",
			"event", event.Kind().String(),
			"orderId", event.OrderID().String(),
			"error", err)
	}
}
