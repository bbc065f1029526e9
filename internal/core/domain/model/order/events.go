package order

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// EventKind tags a domain event for handler registration. The event
// dispatcher maps each kind to the handlers subscribed at process startup.
type EventKind int

const (
	// EventUnknown represents an invalid event kind.
	EventUnknown EventKind = iota

	// EventOrderCreated is raised when a new order enters Created status.
	EventOrderCreated

	// EventOrderAccepted is raised when a driver accepts an order.
	EventOrderAccepted

	// EventDriverArrived is raised when the driver reaches the pickup point.
	EventDriverArrived

	// EventOrderStarted is raised when the ride starts.
	EventOrderStarted

	// EventOrderCompleted is raised when the ride ends.
	EventOrderCompleted

	// EventOrderCancelled is raised when the order moves to any rejected
	// terminal status.
	EventOrderCancelled
)

// String returns the event kind name for logging.
func (k EventKind) String() string {
	switch k {
	case EventOrderCreated:
		return "OrderCreated"
	case EventOrderAccepted:
		return "OrderAccepted"
	case EventDriverArrived:
		return "DriverArrived"
	case EventOrderStarted:
		return "OrderStarted"
	case EventOrderCompleted:
		return "OrderCompleted"
	case EventOrderCancelled:
		return "OrderCancelled"
	default:
		return "Unknown"
	}
}

// DomainEvent is an immutable record of a lifecycle transition. Events are
// produced synchronously by the aggregate during a transition and drained via
// TakeEvents after persistence succeeds.
type DomainEvent interface {
	// Kind identifies the event type for handler routing.
	Kind() EventKind

	// OrderID returns the id of the order that raised the event.
	OrderID() kernel.UUID

	// OccurredAt returns the wall-clock moment of the transition.
	OccurredAt() time.Time
}

// eventBase carries the fields shared by every domain event.
type eventBase struct {
	orderID    kernel.UUID
	occurredAt time.Time
}

func (e eventBase) OrderID() kernel.UUID {
	return e.orderID
}

func (e eventBase) OccurredAt() time.Time {
	return e.occurredAt
}

// OrderCreated carries everything the dispatch engine needs to find and
// notify candidate drivers.
type OrderCreated struct {
	eventBase
	ClientID kernel.UUID
	Category kernel.Category
	Pickup   kernel.GeoPoint
	Price    kernel.Price
}

// Kind implements DomainEvent.
func (e OrderCreated) Kind() EventKind { return EventOrderCreated }

// OrderAccepted is raised when exactly one driver wins the acceptance race.
type OrderAccepted struct {
	eventBase
	ClientID kernel.UUID
	DriverID kernel.UUID
	Category kernel.Category
}

// Kind implements DomainEvent.
func (e OrderAccepted) Kind() EventKind { return EventOrderAccepted }

// DriverArrived is raised when the driver reaches the pickup point.
type DriverArrived struct {
	eventBase
	ClientID kernel.UUID
	DriverID kernel.UUID
}

// Kind implements DomainEvent.
func (e DriverArrived) Kind() EventKind { return EventDriverArrived }

// OrderStarted is raised when the ride begins.
type OrderStarted struct {
	eventBase
	ClientID kernel.UUID
	DriverID kernel.UUID
}

// Kind implements DomainEvent.
func (e OrderStarted) Kind() EventKind { return EventOrderStarted }

// OrderCompleted is raised when the ride ends, carrying the final price.
type OrderCompleted struct {
	eventBase
	ClientID kernel.UUID
	DriverID kernel.UUID
	Price    kernel.Price
}

// Kind implements DomainEvent.
func (e OrderCompleted) Kind() EventKind { return EventOrderCompleted }

// OrderCancelled is raised when the order reaches a rejected terminal state.
// DriverID is nil when no driver had accepted yet. Category is carried so
// handlers can clear the per-category order geo entry.
type OrderCancelled struct {
	eventBase
	ClientID kernel.UUID
	DriverID *kernel.UUID
	Category kernel.Category
	Reason   string
}

// Kind implements DomainEvent.
func (e OrderCancelled) Kind() EventKind { return EventOrderCancelled }
