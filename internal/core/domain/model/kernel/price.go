package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when validating a Price that was not
// created through NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price is an immutable non-negative monetary amount in minor currency units.
// Orders store the agreed price; OrderCompleted events carry the final one.
// The zero value is invalid; use NewPrice.
type Price struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price. The amount must not be negative.
func NewPrice(amount int64) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setAmount(amount); err != nil {
		return Price{}, err
	}

	return price, nil
}

// Validate checks the price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the amount in minor currency units.
func (p Price) Amount() int64 {
	return p.amount
}

// String implements fmt.Stringer.
func (p Price) String() string {
	return fmt.Sprintf("Price(%d)", p.amount)
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

func (p *Price) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", amount))
	}
	p.amount = amount
	return nil
}
