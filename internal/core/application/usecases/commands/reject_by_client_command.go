package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRejectByClientCommandIsNotConstructed = errors.New(
	"RejectByClientCommand must be created via NewRejectByClientCommand constructor",
)

// RejectByClientCommand cancels an order on the client's behalf. Allowed at
// any point before the order reaches a terminal status.
type RejectByClientCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectByClientCommand creates a command cancelling the client's order.
// The reason may be empty.
func NewRejectByClientCommand(orderID, clientID kernel.UUID, reason string) (RejectByClientCommand, error) {
	rejectCommand := RejectByClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setClientID(clientID),
	); err != nil {
		return RejectByClientCommand{}, err
	}

	rejectCommand.reason = reason

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectByClientCommand) Validate() error {
	return c.guard.Validate(ErrRejectByClientCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c RejectByClientCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the cancelling client.
func (c RejectByClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Reason returns the client's cancellation reason, possibly empty.
func (c RejectByClientCommand) Reason() string {
	return c.reason
}

func (c *RejectByClientCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectByClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
