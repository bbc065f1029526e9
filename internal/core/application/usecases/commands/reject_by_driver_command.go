package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRejectByDriverCommandIsNotConstructed = errors.New(
	"RejectByDriverCommand must be created via NewRejectByDriverCommand constructor",
)

// RejectByDriverCommand abandons an accepted order on the driver's behalf, or
// declines an offer the driver never accepted. Only the former mutates the
// order.
type RejectByDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectByDriverCommand creates a command for a driver rejection.
// The reason may be empty.
func NewRejectByDriverCommand(orderID, driverID kernel.UUID, reason string) (RejectByDriverCommand, error) {
	rejectCommand := RejectByDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setDriverID(driverID),
	); err != nil {
		return RejectByDriverCommand{}, err
	}

	rejectCommand.reason = reason

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectByDriverCommand) Validate() error {
	return c.guard.Validate(ErrRejectByDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rejected.
func (c RejectByDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the rejecting driver.
func (c RejectByDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns the driver's rejection reason, possibly empty.
func (c RejectByDriverCommand) Reason() string {
	return c.reason
}

func (c *RejectByDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectByDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
