package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	// RatingMin is the lowest rating a client may give a completed order.
	RatingMin = 1
	// RatingMax is the highest rating a client may give a completed order.
	RatingMax = 5
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of a transportation/delivery request. It
// enforces the lifecycle state machine, the write-once driver assignment, and
// the rating rules, and raises domain events on every transition.
//
// Order follows these invariants:
//   - Driver id is set if and only if the status has progressed past Created
//   - Status transitions are monotonic: no skipping, no reversing, and no
//     transition out of a terminal status
//   - Rating may be set only when the status is Completed
//   - Price is a non-negative monetary value object
//
// All mutation goes through the transition methods. Events raised during a
// transition are buffered on the aggregate and drained with TakeEvents after
// the mutation has been durably persisted.
type Order struct {
	id           kernel.UUID
	clientID     kernel.UUID
	driverID     *kernel.UUID
	category     kernel.Category
	status       Status
	origin       RoutePoint
	destination  RoutePoint
	pickup       kernel.GeoPoint
	price        kernel.Price
	comment      string
	rating       *int
	rejectReason string

	createdAt time.Time
	updatedAt time.Time
	endedAt   *time.Time

	// version is the optimistic concurrency token checked by the repository
	// on update. Two concurrent accepts of the same order load the same
	// version; only one write succeeds.
	version int64

	events []DomainEvent

	isConstructed bool
}

// NewOrder creates a new Order in Created status and raises OrderCreated.
// All required fields are validated; a validation failure leaves no partial
// state behind.
//
// Parameters:
//   - id: unique identifier for the order
//   - clientID: the requesting client
//   - category: service category the order belongs to
//   - origin, destination: route endpoints
//   - pickup: geo coordinates of the pickup point, used for driver matching
//   - price: agreed price (non-negative)
//   - comment: optional free-form note from the client
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	category kernel.Category,
	origin RoutePoint,
	destination RoutePoint,
	pickup kernel.GeoPoint,
	price kernel.Price,
	comment string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		category.Validate(),
		origin.Validate(),
		destination.Validate(),
		pickup.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &Order{
		id:            id,
		clientID:      clientID,
		category:      category,
		status:        StatusCreated,
		origin:        origin,
		destination:   destination,
		pickup:        pickup,
		price:         price,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	o.raise(OrderCreated{
		eventBase: eventBase{orderID: o.id, occurredAt: now},
		ClientID:  o.clientID,
		Category:  o.category,
		Pickup:    o.pickup,
		Price:     o.price,
	})

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence without raising events.
// Used exclusively by repository mappers. The status/driver consistency
// invariant is re-checked so corrupted rows fail fast.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	driverID *kernel.UUID,
	category kernel.Category,
	status Status,
	origin RoutePoint,
	destination RoutePoint,
	pickup kernel.GeoPoint,
	price kernel.Price,
	comment string,
	rating *int,
	rejectReason string,
	createdAt time.Time,
	updatedAt time.Time,
	endedAt *time.Time,
	version int64,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		category.Validate(),
		status.Validate(),
		origin.Validate(),
		destination.Validate(),
		pickup.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID == nil && status != StatusCreated && status != StatusRejected && status != StatusRejectedByClient {
		return nil, errs.NewValueIsInvalidError("driverID")
	}
	if driverID != nil && status == StatusCreated {
		return nil, errs.NewValueIsInvalidError("driverID")
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		driverID:      driverID,
		category:      category,
		status:        status,
		origin:        origin,
		destination:   destination,
		pickup:        pickup,
		price:         price,
		comment:       comment,
		rating:        rating,
		rejectReason:  rejectReason,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		endedAt:       endedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the requesting client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// DriverID returns the assigned driver's identifier, or nil before acceptance.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Category returns the service category of the order.
func (o *Order) Category() kernel.Category {
	return o.category
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Origin returns the route origin.
func (o *Order) Origin() RoutePoint {
	return o.origin
}

// Destination returns the route destination.
func (o *Order) Destination() RoutePoint {
	return o.destination
}

// Pickup returns the pickup coordinates used for matching.
func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

// Price returns the order price.
func (o *Order) Price() kernel.Price {
	return o.price
}

// Comment returns the client's note, possibly empty.
func (o *Order) Comment() string {
	return o.comment
}

// Rating returns the client's rating, or nil if not yet rated.
func (o *Order) Rating() *int {
	return o.rating
}

// RejectReason returns the stored rejection reason, empty for live orders.
func (o *Order) RejectReason() string {
	return o.rejectReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// EndedAt returns the timestamp the order reached a terminal status, or nil.
func (o *Order) EndedAt() *time.Time {
	return o.endedAt
}

// Version returns the optimistic concurrency token loaded from persistence.
func (o *Order) Version() int64 {
	return o.version
}

// TakeEvents drains and returns the events raised since the last drain.
// Command handlers call it after a successful commit and hand the result to
// the event dispatcher.
func (o *Order) TakeEvents() []DomainEvent {
	events := o.events
	o.events = nil
	return events
}

// Accept assigns the order to a driver and moves it to Started.
//
// Business rules:
//   - Legal only from Created
//   - Driver assignment is write-once: a second accept fails with
//     AlreadyAssignedError even if the status check were bypassed
//
// Raises OrderAccepted on success.
func (o *Order) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return errs.NewAlreadyAssignedError(o.id.String(), o.driverID.String())
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.driverID = &driverID
	o.updatedAt = now

	o.raise(OrderAccepted{
		eventBase: eventBase{orderID: o.id, occurredAt: now},
		ClientID:  o.clientID,
		DriverID:  driverID,
		Category:  o.category,
	})

	return nil
}

// DriverArrived marks the driver as arrived at the pickup point.
// Legal only from Started. Raises DriverArrived.
func (o *Order) DriverArrived() error {
	newStatus, err := o.status.DriverArrived()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.updatedAt = now

	o.raise(DriverArrived{
		eventBase: eventBase{orderID: o.id, occurredAt: now},
		ClientID:  o.clientID,
		DriverID:  *o.driverID,
	})

	return nil
}

// Start marks the ride as started. Legal only from Waiting. Raises OrderStarted.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.updatedAt = now

	o.raise(OrderStarted{
		eventBase: eventBase{orderID: o.id, occurredAt: now},
		ClientID:  o.clientID,
		DriverID:  *o.driverID,
	})

	return nil
}

// RideEnded completes the order. Legal only from Ongoing. Raises
// OrderCompleted carrying the final price.
func (o *Order) RideEnded() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.updatedAt = now
	o.endedAt = &now

	o.raise(OrderCompleted{
		eventBase: eventBase{orderID: o.id, occurredAt: now},
		ClientID:  o.clientID,
		DriverID:  *o.driverID,
		Price:     o.price,
	})

	return nil
}

// Redispatch re-raises the creation event so an order nobody picked up gets
// offered to drivers again. Legal only while the order is still Created.
// Bumps updatedAt so the next redispatch cycle skips it until the stale
// threshold passes again.
func (o *Order) Redispatch() error {
	if o.status != StatusCreated {
		return errs.NewInvalidStateError("redispatch", o.status.String())
	}

	now := time.Now()
	o.updatedAt = now

	o.raise(OrderCreated{
		eventBase: eventBase{orderID: o.id, occurredAt: now},
		ClientID:  o.clientID,
		Category:  o.category,
		Pickup:    o.pickup,
		Price:     o.price,
	})

	return nil
}

// RejectByClient cancels the order on the client's behalf. Legal from any
// non-terminal status. Raises OrderCancelled; the driver id in the event is
// nil when no driver had accepted yet.
func (o *Order) RejectByClient(reason string) error {
	return o.rejectTo(StatusRejectedByClient, reason)
}

// RejectByDriver abandons the order on the assigned driver's behalf.
//
// Only an assigned driver can reject an ongoing assignment: an unassigned
// driver declining an offer never mutates order state, so calling this on an
// order still in Created fails with InvalidStateError.
func (o *Order) RejectByDriver(reason string) error {
	if o.driverID == nil {
		return errs.NewInvalidStateErrorWithCause("rejectByDriver", o.status.String(),
			errors.New("no driver assigned"))
	}
	return o.rejectTo(StatusRejectedByDriver, reason)
}

// Reject cancels the order on behalf of the system (operator action, offer
// expiry). Legal from any non-terminal status. Raises OrderCancelled.
func (o *Order) Reject(reason string) error {
	return o.rejectTo(StatusRejected, reason)
}

// Rate records the client's rating. Legal only when the order is Completed;
// the value must lie within [RatingMin, RatingMax]. The optional comment
// replaces the order comment when non-empty.
func (o *Order) Rate(value int, comment string) error {
	if o.status != StatusCompleted {
		return errs.NewInvalidStateError("rate", o.status.String())
	}

	if value < RatingMin || value > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", value, RatingMin, RatingMax)
	}

	o.rating = &value
	if comment != "" {
		o.comment = comment
	}
	o.updatedAt = time.Now()

	return nil
}

func (o *Order) rejectTo(target Status, reason string) error {
	newStatus, err := o.status.RejectTo(target)
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.rejectReason = reason
	o.updatedAt = now
	o.endedAt = &now

	o.raise(OrderCancelled{
		eventBase: eventBase{orderID: o.id, occurredAt: now},
		ClientID:  o.clientID,
		DriverID:  o.driverID,
		Category:  o.category,
		Reason:    reason,
	})

	return nil
}

func (o *Order) raise(event DomainEvent) {
	o.events = append(o.events, event)
}
