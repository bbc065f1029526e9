package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteRideCommandIsNotConstructed = errors.New(
	"CompleteRideCommand must be created via NewCompleteRideCommand constructor",
)

// CompleteRideCommand reports that the ride reached its destination.
type CompleteRideCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteRideCommand creates a command marking the ride completion.
func NewCompleteRideCommand(orderID, driverID kernel.UUID) (CompleteRideCommand, error) {
	completeCommand := CompleteRideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setDriverID(driverID),
	); err != nil {
		return CompleteRideCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRideCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRideCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c CompleteRideCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the reporting driver.
func (c CompleteRideCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *CompleteRideCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteRideCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
