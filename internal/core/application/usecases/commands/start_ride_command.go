package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartRideCommandIsNotConstructed = errors.New(
	"StartRideCommand must be created via NewStartRideCommand constructor",
)

// StartRideCommand reports that the passenger is on board and the ride began.
type StartRideCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRideCommand creates a command marking the ride start.
func NewStartRideCommand(orderID, driverID kernel.UUID) (StartRideCommand, error) {
	startCommand := StartRideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setOrderID(orderID),
		startCommand.setDriverID(driverID),
	); err != nil {
		return StartRideCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRideCommand) Validate() error {
	return c.guard.Validate(ErrStartRideCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c StartRideCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the reporting driver.
func (c StartRideCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartRideCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartRideCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
