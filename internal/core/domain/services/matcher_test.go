package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, clientID kernel.UUID, category kernel.Category) *order.Order {
	t.Helper()

	origin, err := order.NewRoutePoint("12 Lenina St", "geo-origin")
	require.NoError(t, err)
	destination, err := order.NewRoutePoint("7 Mira Ave", "geo-dest")
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(55.751, 37.617)
	require.NoError(t, err)
	price, err := kernel.NewPrice(35000)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), clientID, category, origin, destination, pickup, price, "")
	require.NoError(t, err)

	return aggregate
}

func newTestLicense(t *testing.T, driverID kernel.UUID, category kernel.Category) *driver.CategoryLicense {
	t.Helper()

	license, err := driver.NewCategoryLicense(
		kernel.NewUUID(), driverID, category, "Toyota", "Camry", "A123BC", "white")
	require.NoError(t, err)

	return license
}

func TestMatcher_Match(t *testing.T) {
	matcher := services.NewMatcher()

	t.Run("should keep only drivers licensed for the order category", func(t *testing.T) {
		clientID := kernel.NewUUID()
		aggregate := newTestOrder(t, clientID, kernel.CategoryTaxi)

		taxiDriver := kernel.NewUUID()
		cargoDriver := kernel.NewUUID()
		candidates := []services.Candidate{
			{DriverID: taxiDriver, Licenses: []*driver.CategoryLicense{newTestLicense(t, taxiDriver, kernel.CategoryTaxi)}},
			{DriverID: cargoDriver, Licenses: []*driver.CategoryLicense{newTestLicense(t, cargoDriver, kernel.CategoryCargo)}},
		}

		eligible, err := matcher.Match(aggregate, candidates)

		require.NoError(t, err)
		require.Len(t, eligible, 1)
		assert.True(t, eligible[0].IsEqual(taxiDriver))
	})

	t.Run("should preserve proximity ranking of the input", func(t *testing.T) {
		aggregate := newTestOrder(t, kernel.NewUUID(), kernel.CategoryDelivery)

		nearest := kernel.NewUUID()
		middle := kernel.NewUUID()
		farthest := kernel.NewUUID()
		candidates := []services.Candidate{
			{DriverID: nearest, Licenses: []*driver.CategoryLicense{newTestLicense(t, nearest, kernel.CategoryDelivery)}},
			{DriverID: middle, Licenses: []*driver.CategoryLicense{newTestLicense(t, middle, kernel.CategoryDelivery)}},
			{DriverID: farthest, Licenses: []*driver.CategoryLicense{newTestLicense(t, farthest, kernel.CategoryDelivery)}},
		}

		eligible, err := matcher.Match(aggregate, candidates)

		require.NoError(t, err)
		require.Len(t, eligible, 3)
		assert.True(t, eligible[0].IsEqual(nearest))
		assert.True(t, eligible[1].IsEqual(middle))
		assert.True(t, eligible[2].IsEqual(farthest))
	})

	t.Run("should exclude the ordering client from their own order", func(t *testing.T) {
		clientID := kernel.NewUUID()
		aggregate := newTestOrder(t, clientID, kernel.CategoryTaxi)

		candidates := []services.Candidate{
			{DriverID: clientID, Licenses: []*driver.CategoryLicense{newTestLicense(t, clientID, kernel.CategoryTaxi)}},
		}

		eligible, err := matcher.Match(aggregate, candidates)

		require.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("should match driver holding several licenses", func(t *testing.T) {
		aggregate := newTestOrder(t, kernel.NewUUID(), kernel.CategoryCargo)

		driverID := kernel.NewUUID()
		candidates := []services.Candidate{
			{DriverID: driverID, Licenses: []*driver.CategoryLicense{
				newTestLicense(t, driverID, kernel.CategoryTaxi),
				newTestLicense(t, driverID, kernel.CategoryCargo),
			}},
		}

		eligible, err := matcher.Match(aggregate, candidates)

		require.NoError(t, err)
		require.Len(t, eligible, 1)
		assert.True(t, eligible[0].IsEqual(driverID))
	})

	t.Run("should return empty result for empty candidate list", func(t *testing.T) {
		aggregate := newTestOrder(t, kernel.NewUUID(), kernel.CategoryTaxi)

		eligible, err := matcher.Match(aggregate, nil)

		require.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("should skip drivers without any licenses", func(t *testing.T) {
		aggregate := newTestOrder(t, kernel.NewUUID(), kernel.CategoryTaxi)

		candidates := []services.Candidate{
			{DriverID: kernel.NewUUID(), Licenses: nil},
		}

		eligible, err := matcher.Match(aggregate, candidates)

		require.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("should fail for order that is not constructed", func(t *testing.T) {
		_, err := matcher.Match(&order.Order{}, nil)

		require.Error(t, err)
	})
}
