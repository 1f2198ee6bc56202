package entity

import (
	"time"
)

// TrackingEvent is a single geotagged location report for an order. Events
// live in the Tracking Store; the order ID is carried by convention and is
// not a referential-integrity relation.
//
// Every insert sets Active unconditionally. Nothing deactivates older events
// individually -- the only bulk deactivation is the delivery synchronization,
// which clears the flag for every event of the delivered order.
type TrackingEvent struct {
	ID        string     `json:"id"` // Hex document ID assigned by the Tracking Store.
	OrderID   int64      `json:"orden_id"`
	Latitude  float64    `json:"latitud"`
	Longitude float64    `json:"longitud"`
	Timestamp time.Time  `json:"timestamp"`
	Active    bool       `json:"activo"`
	SpeedKmh  *float64   `json:"velocidad_kmh,omitempty"`
	Heading   *float64   `json:"rumbo,omitempty"` // Degrees clockwise from north.
	SyncedAt  *time.Time `json:"fecha_sincronizacion,omitempty"`

	DeviceID        string   `json:"dispositivo_id,omitempty"`
	PrecisionMeters *float64 `json:"precision_metros,omitempty"` // Optional GPS accuracy estimate.
}
