// Package redisgeo implements the location cache on Redis GEO indexes.
//
// Driver positions live in a single sorted set; open order pickup points are
// kept in one sorted set per category so drivers browsing the map only pull
// orders they can serve. All operations are upserts against Redis, which
// fits the best-effort contract of the cache: stale entries are tolerated
// and removal of absent members is silent.
package redisgeo

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	driverGeoKey      = "geo:drivers"
	orderGeoKeyPrefix = "geo:orders:%s"
)

// LocationCache is the Redis-backed geospatial index for driver and order
// positions.
type LocationCache struct {
	client *redis.Client
}

var _ ports.LocationCache = (*LocationCache)(nil)

// NewLocationCache creates a location cache on the given Redis client.
func NewLocationCache(client *redis.Client) *LocationCache {
	return &LocationCache{client: client}
}

// UpdateDriverLocation upserts the driver's last known position.
func (c *LocationCache) UpdateDriverLocation(
	ctx context.Context,
	driverID kernel.UUID,
	location kernel.GeoPoint,
) error {
	err := c.client.GeoAdd(ctx, driverGeoKey, &redis.GeoLocation{
		Name:      driverID.String(),
		Longitude: location.Lng(),
		Latitude:  location.Lat(),
	}).Err()
	if err != nil {
		return errs.NewDependencyError("location cache", err)
	}
	return nil
}

// RemoveDriverLocation drops the driver's position from the index.
func (c *LocationCache) RemoveDriverLocation(ctx context.Context, driverID kernel.UUID) error {
	if err := c.client.ZRem(ctx, driverGeoKey, driverID.String()).Err(); err != nil {
		return errs.NewDependencyError("location cache", err)
	}
	return nil
}

// FindNearestDrivers returns up to limit drivers within radiusKm of the given
// point, nearest first.
func (c *LocationCache) FindNearestDrivers(
	ctx context.Context,
	from kernel.GeoPoint,
	radiusKm float64,
	limit int,
) ([]ports.NearbyDriver, error) {
	results, err := c.client.GeoSearchLocation(ctx, driverGeoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  from.Lng(),
			Latitude:   from.Lat(),
			Radius:     radiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
			Count:      limit,
		},
		WithCoord: true,
		WithDist:  true,
	}).Result()
	if err != nil {
		return nil, errs.NewDependencyError("location cache", err)
	}

	nearby := make([]ports.NearbyDriver, 0, len(results))
	for _, loc := range results {
		driverID, idErr := kernel.UUIDFromString(loc.Name)
		if idErr != nil {
			// A foreign member in the index is skipped, not fatal.
			continue
		}

		position, geoErr := kernel.NewGeoPoint(loc.Latitude, loc.Longitude)
		if geoErr != nil {
			continue
		}

		nearby = append(nearby, ports.NearbyDriver{
			DriverID:   driverID,
			Location:   position,
			DistanceKm: loc.Dist,
		})
	}

	return nearby, nil
}

// UpdateOrderLocation upserts an open order's pickup point in the
// per-category order index.
func (c *LocationCache) UpdateOrderLocation(
	ctx context.Context,
	orderID kernel.UUID,
	category kernel.Category,
	location kernel.GeoPoint,
) error {
	err := c.client.GeoAdd(ctx, orderGeoKey(category), &redis.GeoLocation{
		Name:      orderID.String(),
		Longitude: location.Lng(),
		Latitude:  location.Lat(),
	}).Err()
	if err != nil {
		return errs.NewDependencyError("location cache", err)
	}
	return nil
}

// RemoveOrderLocation drops the order's pickup point from the per-category
// order index.
func (c *LocationCache) RemoveOrderLocation(
	ctx context.Context,
	orderID kernel.UUID,
	category kernel.Category,
) error {
	if err := c.client.ZRem(ctx, orderGeoKey(category), orderID.String()).Err(); err != nil {
		return errs.NewDependencyError("location cache", err)
	}
	return nil
}

func orderGeoKey(category kernel.Category) string {
	return fmt.Sprintf(orderGeoKeyPrefix, category.String())
}
