package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRedispatchStaleOrdersCommandIsNotConstructed = errors.New(
	"RedispatchStaleOrdersCommand must be created via NewRedispatchStaleOrdersCommand constructor",
)

// RedispatchStaleOrdersCommand re-offers orders that have sat in Created
// beyond the given age without any driver accepting them.
type RedispatchStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRedispatchStaleOrdersCommand creates a command re-offering stale orders.
// The age must be positive.
func NewRedispatchStaleOrdersCommand(olderThan time.Duration) (RedispatchStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return RedispatchStaleOrdersCommand{}, errs.NewValueIsInvalidError("olderThan")
	}

	return RedispatchStaleOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RedispatchStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRedispatchStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age of orders to re-offer.
func (c RedispatchStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
