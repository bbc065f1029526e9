package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client's request to open a new order.
// Carries the route endpoints, the pickup coordinates for driver matching,
// and the agreed price in minor currency units.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), clientID, kernel.CategoryTaxi,
//	    "12 Lenina St", "", "7 Mira Ave", "",
//	    55.751, 37.617, 35000, "second entrance")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	clientID      kernel.UUID
	category      kernel.Category
	originAddress string
	originGeoID   string
	destAddress   string
	destGeoID     string
	pickupLat     float64
	pickupLng     float64
	price         int64
	comment       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order. Validates
// identifiers and the category eagerly; route points, coordinates, and price
// are validated when the handler builds the value objects.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	category kernel.Category,
	originAddress string,
	originGeoID string,
	destAddress string,
	destGeoID string,
	pickupLat float64,
	pickupLng float64,
	price int64,
	comment string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setCategory(category),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.originAddress = originAddress
	orderCommand.originGeoID = originGeoID
	orderCommand.destAddress = destAddress
	orderCommand.destGeoID = destGeoID
	orderCommand.pickupLat = pickupLat
	orderCommand.pickupLng = pickupLng
	orderCommand.price = price
	orderCommand.comment = comment

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Category returns the requested service category.
func (c CreateOrderCommand) Category() kernel.Category {
	return c.category
}

// OriginAddress returns the pickup address text.
func (c CreateOrderCommand) OriginAddress() string {
	return c.originAddress
}

// OriginGeoID returns the geocoder id of the origin, possibly empty.
func (c CreateOrderCommand) OriginGeoID() string {
	return c.originGeoID
}

// DestAddress returns the destination address text.
func (c CreateOrderCommand) DestAddress() string {
	return c.destAddress
}

// DestGeoID returns the geocoder id of the destination, possibly empty.
func (c CreateOrderCommand) DestGeoID() string {
	return c.destGeoID
}

// PickupLat returns the pickup latitude.
func (c CreateOrderCommand) PickupLat() float64 {
	return c.pickupLat
}

// PickupLng returns the pickup longitude.
func (c CreateOrderCommand) PickupLng() float64 {
	return c.pickupLng
}

// Price returns the agreed price in minor currency units.
func (c CreateOrderCommand) Price() int64 {
	return c.price
}

// Comment returns the client's free-form note, possibly empty.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setCategory(category kernel.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
