package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("new UUID is valid and unique", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.True(t, id1.IsEqual(id1))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("round trip through string", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("invalid string is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("round trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		parsed, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})
}

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid point", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(43.585, 51.236)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 43.585, p.Lat(), 1e-9)
		assert.InDelta(t, 51.236, p.Lng(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(kernel.GeoMinLatitude, kernel.GeoMaxLongitude)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(kernel.GeoMaxLatitude, kernel.GeoMinLongitude)
		require.NoError(t, err)
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
	})

	t.Run("should reject out of range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lng")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(43.585, 51.236)

		km, err := p.DistanceKm(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(43.0, 51.0)
		p2, _ := kernel.NewGeoPoint(44.0, 51.0)

		km, err := p1.DistanceKm(p2)

		require.NoError(t, err)
		assert.InDelta(t, 111.2, km, 0.5)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(43.585, 51.236)
		p2, _ := kernel.NewGeoPoint(43.650, 51.160)

		d1, err := p1.DistanceKm(p2)
		require.NoError(t, err)
		d2, err := p2.DistanceKm(p1)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("fails for unconstructed point", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(43.585, 51.236)
		var zero kernel.GeoPoint

		_, err := p.DistanceKm(zero)

		require.Error(t, err)
	})
}

func TestNewPrice(t *testing.T) {
	t.Run("should create non-negative price", func(t *testing.T) {
		p, err := kernel.NewPrice(1000)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(1000), p.Amount())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		p, err := kernel.NewPrice(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), p.Amount())
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.Price

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}

func TestCategory(t *testing.T) {
	t.Run("valid categories pass validation", func(t *testing.T) {
		for _, c := range []kernel.Category{
			kernel.CategoryTaxi,
			kernel.CategoryDelivery,
			kernel.CategoryCargo,
			kernel.CategoryIntercity,
		} {
			require.NoError(t, c.Validate(), c.String())
		}
	})

	t.Run("unknown category fails validation", func(t *testing.T) {
		require.Error(t, kernel.CategoryUnknown.Validate())
		require.Error(t, kernel.Category(42).Validate())
	})

	t.Run("string round trip", func(t *testing.T) {
		c, err := kernel.CategoryFromString(kernel.CategoryCargo.String())

		require.NoError(t, err)
		assert.Equal(t, kernel.CategoryCargo, c)
	})

	t.Run("unknown string is rejected", func(t *testing.T) {
		_, err := kernel.CategoryFromString("Submarine")

		require.Error(t, err)
	})

	t.Run("string of invalid value is Unknown", func(t *testing.T) {
		assert.Equal(t, "Unknown", kernel.Category(42).String())
	})
}
