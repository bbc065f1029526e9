// Package orderrepo provides the GORM-backed repository for order aggregates,
// including the data transfer objects mapping domain entities to rows.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column drives the optimistic-concurrency check in Update; the
// status and driver indexes serve the active-order and redispatch lookups.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID  `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	Category      string     `gorm:"type:varchar(32)"`
	Status        string     `gorm:"type:varchar(32);index"`
	OriginAddress string
	OriginGeoID   string
	DestAddress   string
	DestGeoID     string
	PickupLat     float64
	PickupLng     float64
	Price         int64
	Comment       string
	Rating        *int
	RejectReason  string
	CreatedAt     time.Time
	UpdatedAt     time.Time  `gorm:"index"`
	EndedAt       *time.Time
	Version       int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		ClientID:      aggregate.ClientID().Bytes(),
		DriverID:      driverID,
		Category:      aggregate.Category().String(),
		Status:        aggregate.Status().String(),
		OriginAddress: aggregate.Origin().Address(),
		OriginGeoID:   aggregate.Origin().GeoID(),
		DestAddress:   aggregate.Destination().Address(),
		DestGeoID:     aggregate.Destination().GeoID(),
		PickupLat:     aggregate.Pickup().Lat(),
		PickupLng:     aggregate.Pickup().Lng(),
		Price:         aggregate.Price().Amount(),
		Comment:       aggregate.Comment(),
		Rating:        aggregate.Rating(),
		RejectReason:  aggregate.RejectReason(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		EndedAt:       aggregate.EndedAt(),
		Version:       aggregate.Version(),
	}
}

// toDomain converts a database row back into an order aggregate using
// RestoreOrder, which re-checks the status/driver consistency invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	category, err := kernel.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	origin, err := order.NewRoutePoint(dto.OriginAddress, dto.OriginGeoID)
	if err != nil {
		return nil, err
	}

	destination, err := order.NewRoutePoint(dto.DestAddress, dto.DestGeoID)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		clientID,
		driverID,
		category,
		status,
		origin,
		destination,
		pickup,
		price,
		dto.Comment,
		dto.Rating,
		dto.RejectReason,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.EndedAt,
		dto.Version,
	)
}
