// Package notifier routes real-time events to connected users and falls back
// to the push channel for users who are offline. It also hosts the handlers
// that translate domain events into wire events.
package notifier

import (
	"encoding/json"
	"time"
)

// Wire event names as seen by connected clients and drivers.
const (
	EventNewOrder       = "newOrder"
	EventOrderAccepted  = "orderAccepted"
	EventOrderTaken     = "orderTaken"
	EventDriverArrived  = "driverArrived"
	EventRideStarted    = "rideStarted"
	EventRideEnded      = "rideEnded"
	EventOrderCancelled = "orderCancelled"
	EventOrderDeleted   = "orderDeleted"
	EventLocationUpdate = "locationUpdate"
)

// Payload is the JSON body attached to a wire event. Zero-valued fields are
// omitted so each event carries only what it needs.
type Payload struct {
	OrderID   string  `json:"orderId,omitempty"`
	ClientID  string  `json:"clientId,omitempty"`
	DriverID  string  `json:"driverId,omitempty"`
	Category  string  `json:"category,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
	Price     int64   `json:"price,omitempty"`
	Address   string  `json:"address,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Timestamp string  `json:"timestamp"`
}

// Marshal encodes the payload, stamping the current time when unset.
func (p Payload) Marshal() []byte {
	if p.Timestamp == "" {
		p.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	// Payload contains only marshalable fields, encoding cannot fail.
	data, _ := json.Marshal(p)

	return data
}
