package usecase

import (
	"context"
	"time"

	"rumbo/internal/domain/entity"
)

// RecordTrackingInput is a single GPS report from a device or simulator.
type RecordTrackingInput struct {
	Latitude        float64    `json:"latitud"`
	Longitude       float64    `json:"longitud"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
	SpeedKmh        *float64   `json:"velocidad_kmh,omitempty"`
	Heading         *float64   `json:"rumbo,omitempty"`
	DeviceID        string     `json:"dispositivo_id,omitempty"`
	PrecisionMeters *float64   `json:"precision_metros,omitempty"`
}

// TrackingHistory is an order's location history, newest-first.
type TrackingHistory struct {
	Order  *entity.Order           `json:"orden"`
	Events []*entity.TrackingEvent `json:"eventos"`
}

// RoutePoint is a coordinate pair used in route statistics.
type RoutePoint struct {
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
}

// RouteStats summarizes an order's recorded route.
type RouteStats struct {
	Order       *entity.Order `json:"orden"`
	TotalPoints int           `json:"total_puntos"`

	AvgSpeedKmh *float64 `json:"velocidad_promedio_kmh,omitempty"`
	MaxSpeedKmh *float64 `json:"velocidad_maxima_kmh,omitempty"`
	MinSpeedKmh *float64 `json:"velocidad_minima_kmh,omitempty"`

	// TransitTime spans the first to the last recorded timestamp; nil with
	// fewer than two timestamped events. TransitTimeText is its readable
	// rendering for API consumers.
	TransitTime     *time.Duration `json:"-"`
	TransitTimeText string         `json:"tiempo_transito,omitempty"`
	FirstSeen       *time.Time     `json:"primer_evento,omitempty"`
	LastSeen        *time.Time     `json:"ultimo_evento,omitempty"`

	// RouteMeters is the haversine length of the polyline through every
	// recorded point, in order.
	RouteMeters float64 `json:"distancia_recorrida_metros"`

	Start *RoutePoint `json:"punto_inicial,omitempty"`
	End   *RoutePoint `json:"punto_final,omitempty"`
}

// TrackingUsecase defines GPS event use cases. Every operation checks order
// existence against the Order Ledger first.
type TrackingUsecase interface {
	// Record stores a location report and returns the new event's ID.
	Record(ctx context.Context, orderID int64, input *RecordTrackingInput) (string, error)

	// History returns the order's events newest-first, capped at limit.
	History(ctx context.Context, orderID int64, limit int) (*TrackingHistory, error)

	// Stats computes route statistics over the order's full event stream.
	Stats(ctx context.Context, orderID int64) (*RouteStats, error)

	// Erase deletes every event of the order and returns the count removed.
	Erase(ctx context.Context, orderID int64) (int64, error)
}
