package mongodb

import (
	"testing"
	"time"

	"rumbo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTrackingDocument_RoundTripKeepsCoordinateOrder(t *testing.T) {
	t.Parallel()

	speed := 35.5
	precision := 4.2
	syncedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	event := &entity.TrackingEvent{
		OrderID:         42,
		Latitude:        4.7110,
		Longitude:       -74.0721,
		Timestamp:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Active:          true,
		SpeedKmh:        &speed,
		SyncedAt:        &syncedAt,
		DeviceID:        "gps-007",
		PrecisionMeters: &precision,
	}

	doc := fromTrackingDomain(event)
	require.NotNil(t, doc)

	// GeoJSON stores [longitude, latitude].
	require.Len(t, doc.Location.Coordinates, 2)
	assert.Equal(t, geoJSONPointType, doc.Location.Type)
	assert.Equal(t, -74.0721, doc.Location.Coordinates[0])
	assert.Equal(t, 4.7110, doc.Location.Coordinates[1])

	doc.ID = primitive.NewObjectID()
	got := toTrackingDomain(doc)
	require.NotNil(t, got)

	assert.Equal(t, doc.ID.Hex(), got.ID)
	assert.Equal(t, event.OrderID, got.OrderID)
	assert.Equal(t, 4.7110, got.Latitude)
	assert.Equal(t, -74.0721, got.Longitude)
	assert.Equal(t, event.Timestamp, got.Timestamp)
	assert.True(t, got.Active)
	require.NotNil(t, got.SpeedKmh)
	assert.Equal(t, speed, *got.SpeedKmh)
	assert.Nil(t, got.Heading)
	require.NotNil(t, got.SyncedAt)
	assert.Equal(t, syncedAt, *got.SyncedAt)
	assert.Equal(t, "gps-007", got.DeviceID)
	require.NotNil(t, got.PrecisionMeters)
	assert.Equal(t, precision, *got.PrecisionMeters)
}

func TestToTrackingDomain_TruncatedCoordinates(t *testing.T) {
	t.Parallel()

	doc := &trackingDocument{
		OrderID: 7,
		Location: geoPoint{
			Type:        geoJSONPointType,
			Coordinates: []float64{-74.0721},
		},
	}

	got := toTrackingDomain(doc)
	require.NotNil(t, got)
	assert.Zero(t, got.Latitude)
	assert.Zero(t, got.Longitude)
}

func TestTrackingDocument_NilMappings(t *testing.T) {
	t.Parallel()

	assert.Nil(t, toTrackingDomain(nil))
	assert.Nil(t, fromTrackingDomain(nil))
}
