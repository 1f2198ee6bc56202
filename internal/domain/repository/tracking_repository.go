package repository

import (
	"context"
	"time"

	"rumbo/internal/domain/entity"
)

// TrackingRepository is the port for GPS event documents in the Tracking
// Store. Writes never validate order existence; that check belongs to the
// API layer.
type TrackingRepository interface {
	// Insert stores a new event and returns its generated document ID.
	Insert(ctx context.Context, event *entity.TrackingEvent) (string, error)

	// FindLatest returns the event with the most recent timestamp for the
	// order, or nil when the order has no events.
	FindLatest(ctx context.Context, orderID int64) (*entity.TrackingEvent, error)

	// FindByOrder returns events for the order newest-first, capped at limit.
	FindByOrder(ctx context.Context, orderID int64, limit int) ([]*entity.TrackingEvent, error)

	// FindByOrderChronological returns every event for the order oldest-first.
	FindByOrderChronological(ctx context.Context, orderID int64) ([]*entity.TrackingEvent, error)

	// FindNearby returns active events within radiusMeters of the point,
	// preserving the spatial index's native ascending-distance order.
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*entity.TrackingEvent, error)

	// DeactivateByOrder clears the active flag on every event of the order
	// and stamps the synchronization time. Returns the number of modified
	// documents.
	DeactivateByOrder(ctx context.Context, orderID int64, syncedAt time.Time) (int64, error)

	// DeleteByOrder removes every event of the order and returns the count.
	DeleteByOrder(ctx context.Context, orderID int64) (int64, error)
}
