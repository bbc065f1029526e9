package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Plate struct {
		number string
		guard  guard.ConstructorGuard
	}

	var errPlateNotConstructed = errors.New("Plate must be created via NewPlate")

	newPlate := func(number string) (Plate, error) {
		if number == "" {
			return Plate{}, errors.New("plate number is required")
		}
		return Plate{number: number, guard: guard.NewConstructorGuard()}, nil
	}

	validatePlate := func(p Plate) error {
		return p.guard.Validate(errPlateNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		plate, err := newPlate("123ABC02")

		require.NoError(t, err)
		require.NoError(t, validatePlate(plate))
		assert.Equal(t, "123ABC02", plate.number)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var plate Plate

		err := validatePlate(plate)

		require.Error(t, err)
		assert.Equal(t, errPlateNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPlate("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plate number is required")
	})
}
