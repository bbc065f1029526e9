package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDriverArrivedCommandIsNotConstructed = errors.New(
	"DriverArrivedCommand must be created via NewDriverArrivedCommand constructor",
)

// DriverArrivedCommand reports that the assigned driver reached the pickup
// point.
type DriverArrivedCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriverArrivedCommand creates a command marking the driver's arrival.
func NewDriverArrivedCommand(orderID, driverID kernel.UUID) (DriverArrivedCommand, error) {
	arrivedCommand := DriverArrivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		arrivedCommand.setOrderID(orderID),
		arrivedCommand.setDriverID(driverID),
	); err != nil {
		return DriverArrivedCommand{}, err
	}

	return arrivedCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverArrivedCommand) Validate() error {
	return c.guard.Validate(ErrDriverArrivedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c DriverArrivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the reporting driver.
func (c DriverArrivedCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *DriverArrivedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DriverArrivedCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
