package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Category represents the service category of an order and of a driver's
// license. A driver may only be matched to orders of a category they hold a
// license for.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	// CategoryTaxi is a passenger ride within one city.
	CategoryTaxi

	// CategoryDelivery is a small-package courier delivery.
	CategoryDelivery

	// CategoryCargo is a cargo/freight transport request.
	CategoryCargo

	// CategoryIntercity is a passenger ride between cities.
	CategoryIntercity
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:   "Unknown",
		CategoryTaxi:      "Taxi",
		CategoryDelivery:  "Delivery",
		CategoryCargo:     "Cargo",
		CategoryIntercity: "Intercity",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryTaxi:      "Taxi",
		CategoryDelivery:  "Delivery",
		CategoryCargo:     "Cargo",
		CategoryIntercity: "Intercity",
	}
}

// CategoryFromString parses a category name as stored in persistence or
// received from transports. The comparison is exact.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getValidCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks the Category is one of the known service categories.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
// Implements fmt.Stringer and is safe to call on any Category value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
