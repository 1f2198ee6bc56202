package usecase

import (
	"context"
	"time"

	"rumbo/internal/domain/entity"
)

// NearbyResult is one active tracking event matched by a proximity search,
// enriched with its order's summary fields. Summary is the zero value when
// the order row no longer exists in the Order Ledger.
type NearbyResult struct {
	OrderID        int64               `json:"orden_id"`
	Latitude       float64             `json:"latitud"`
	Longitude      float64             `json:"longitud"`
	Timestamp      time.Time           `json:"timestamp"`
	SpeedKmh       *float64            `json:"velocidad_kmh,omitempty"`
	DistanceMeters float64             `json:"distancia_metros"`
	Summary        entity.OrderSummary `json:"orden_info"`
}

// GeoUsecase defines geospatial proximity queries over active tracking
// events.
type GeoUsecase interface {
	// FindNearby returns active events within radiusMeters of the point,
	// ascending by distance, each joined with its order summary.
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*NearbyResult, error)
}
