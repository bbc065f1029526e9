package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// Request bodies. Identity fields ride in the body because the transport
// carries no authentication; an auth layer in front would supply them from
// the session instead.

type routePointRequest struct {
	Address string `json:"address"`
	GeoID   string `json:"geoId"`
}

type createOrderRequest struct {
	ClientID    string            `json:"clientId"`
	Category    string            `json:"category"`
	Origin      routePointRequest `json:"origin"`
	Destination routePointRequest `json:"destination"`
	PickupLat   float64           `json:"pickupLat"`
	PickupLng   float64           `json:"pickupLng"`
	Price       int64             `json:"price"`
	Comment     string            `json:"comment"`
}

type driverActionRequest struct {
	DriverID string `json:"driverId"`
}

type rejectByClientRequest struct {
	ClientID string `json:"clientId"`
	Reason   string `json:"reason"`
}

type rejectByDriverRequest struct {
	DriverID string `json:"driverId"`
	Reason   string `json:"reason"`
}

type rateOrderRequest struct {
	ClientID string `json:"clientId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type addLicenseRequest struct {
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Plate    string `json:"plate"`
	Color    string `json:"color"`
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Responses.

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderResponse struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"clientId"`
	DriverID      *string    `json:"driverId,omitempty"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	OriginAddress string     `json:"originAddress"`
	DestAddress   string     `json:"destAddress"`
	PickupLat     float64    `json:"pickupLat"`
	PickupLng     float64    `json:"pickupLng"`
	Price         int64      `json:"price"`
	Rating        *int       `json:"rating,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
}

func toOrderResponse(summary queries.OrderSummary) orderResponse {
	var driverID *string
	if summary.DriverID != nil {
		s := summary.DriverID.String()
		driverID = &s
	}

	return orderResponse{
		ID:            summary.ID.String(),
		ClientID:      summary.ClientID.String(),
		DriverID:      driverID,
		Category:      summary.Category,
		Status:        summary.Status,
		OriginAddress: summary.OriginAddress,
		DestAddress:   summary.DestAddress,
		PickupLat:     summary.PickupLat,
		PickupLng:     summary.PickupLng,
		Price:         summary.Price,
		Rating:        summary.Rating,
		CreatedAt:     summary.CreatedAt,
		EndedAt:       summary.EndedAt,
	}
}

func toOrderResponses(summaries []queries.OrderSummary) []orderResponse {
	responses := make([]orderResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = toOrderResponse(summary)
	}
	return responses
}
