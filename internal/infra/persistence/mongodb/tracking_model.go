package mongodb

import (
	"time"

	"rumbo/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const geoJSONPointType = "Point"

// geoPoint is a GeoJSON point. GeoJSON orders coordinates as
// [longitude, latitude], the reverse of the usual spoken order.
type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// trackingMetadata carries device-level fields of a report.
type trackingMetadata struct {
	DeviceID        string   `bson:"dispositivo_id,omitempty"`
	PrecisionMeters *float64 `bson:"precision_metros,omitempty"`
}

// trackingDocument mirrors one document of the 'tracking' collection. Field
// names follow the deployed collection schema.
type trackingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OrderID   int64              `bson:"orden_id"`
	Location  geoPoint           `bson:"ubicacion"`
	Timestamp time.Time          `bson:"timestamp"`
	Active    bool               `bson:"activo"`
	SpeedKmh  *float64           `bson:"velocidad_kmh,omitempty"`
	Heading   *float64           `bson:"rumbo,omitempty"`
	SyncedAt  *time.Time         `bson:"fecha_sincronizacion,omitempty"`
	Metadata  trackingMetadata   `bson:"metadata"`
}

// --- Mapper Functions ---

// toTrackingDomain converts a stored document to a domain TrackingEvent.
func toTrackingDomain(doc *trackingDocument) *entity.TrackingEvent {
	if doc == nil {
		return nil
	}

	event := &entity.TrackingEvent{
		ID:              doc.ID.Hex(),
		OrderID:         doc.OrderID,
		Timestamp:       doc.Timestamp,
		Active:          doc.Active,
		SpeedKmh:        doc.SpeedKmh,
		Heading:         doc.Heading,
		SyncedAt:        doc.SyncedAt,
		DeviceID:        doc.Metadata.DeviceID,
		PrecisionMeters: doc.Metadata.PrecisionMeters,
	}
	if len(doc.Location.Coordinates) >= 2 {
		event.Longitude = doc.Location.Coordinates[0]
		event.Latitude = doc.Location.Coordinates[1]
	}

	return event
}

// fromTrackingDomain converts a domain TrackingEvent to a storable document.
func fromTrackingDomain(event *entity.TrackingEvent) *trackingDocument {
	if event == nil {
		return nil
	}

	return &trackingDocument{
		OrderID: event.OrderID,
		Location: geoPoint{
			Type:        geoJSONPointType,
			Coordinates: []float64{event.Longitude, event.Latitude},
		},
		Timestamp: event.Timestamp,
		Active:    event.Active,
		SpeedKmh:  event.SpeedKmh,
		Heading:   event.Heading,
		SyncedAt:  event.SyncedAt,
		Metadata: trackingMetadata{
			DeviceID:        event.DeviceID,
			PrecisionMeters: event.PrecisionMeters,
		},
	}
}
