package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand records the client's rating of a completed ride.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command rating a completed order. The rating
// must lie within the allowed range; the comment is optional.
func NewRateOrderCommand(orderID, clientID kernel.UUID, rating int, comment string) (RateOrderCommand, error) {
	rateCommand := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rateCommand.setOrderID(orderID),
		rateCommand.setClientID(clientID),
		rateCommand.setRating(rating),
	); err != nil {
		return RateOrderCommand{}, err
	}

	rateCommand.comment = comment

	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the rated order.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the rating client.
func (c RateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Rating returns the rating value.
func (c RateOrderCommand) Rating() int {
	return c.rating
}

// Comment returns the optional review text.
func (c RateOrderCommand) Comment() string {
	return c.comment
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *RateOrderCommand) setRating(rating int) error {
	if rating < order.RatingMin || rating > order.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, order.RatingMin, order.RatingMax)
	}

	c.rating = rating
	return nil
}
