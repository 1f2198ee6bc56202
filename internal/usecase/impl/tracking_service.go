package impl

import (
	"context"
	"time"

	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	"rumbo/internal/errors"
	"rumbo/internal/usecase"
	"rumbo/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type trackingService struct {
	tracking repository.TrackingRepository
	orders   repository.OrderRepository
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(tracking repository.TrackingRepository, orders repository.OrderRepository) usecase.TrackingUsecase {
	return &trackingService{
		tracking: tracking,
		orders:   orders,
	}
}

// Record stores a GPS report for an existing order. The event is inserted
// with the active flag set unconditionally; older events stay untouched.
func (s *trackingService) Record(ctx context.Context, orderID int64, input *usecase.RecordTrackingInput) (string, error) {
	if _, err := s.requireOrder(ctx, orderID); err != nil {
		return "", err
	}

	timestamp := time.Now().UTC()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	event := &entity.TrackingEvent{
		OrderID:         orderID,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Timestamp:       timestamp,
		Active:          true,
		SpeedKmh:        input.SpeedKmh,
		Heading:         input.Heading,
		DeviceID:        input.DeviceID,
		PrecisionMeters: input.PrecisionMeters,
	}

	id, err := s.tracking.Insert(ctx, event)
	if err != nil {
		return "", domainerrors.ErrTrackingStoreFailed.WrapMessage("failed to insert tracking event")
	}

	return id, nil
}

// History returns an order's events newest-first.
func (s *trackingService) History(ctx context.Context, orderID int64, limit int) (*usecase.TrackingHistory, error) {
	order, err := s.requireOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	events, err := s.tracking.FindByOrder(ctx, orderID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tracking history")
	}

	return &usecase.TrackingHistory{Order: order, Events: events}, nil
}

// Stats walks the order's full event stream oldest-first and aggregates
// speed, timing and route length.
func (s *trackingService) Stats(ctx context.Context, orderID int64) (*usecase.RouteStats, error) {
	order, err := s.requireOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	events, err := s.tracking.FindByOrderChronological(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tracking events")
	}

	stats := &usecase.RouteStats{
		Order:       order,
		TotalPoints: len(events),
	}
	if len(events) == 0 {
		return stats, nil
	}

	aggregateSpeeds(stats, events)
	aggregateTimes(stats, events)

	first, last := events[0], events[len(events)-1]
	stats.Start = &usecase.RoutePoint{Latitude: first.Latitude, Longitude: first.Longitude}
	stats.End = &usecase.RoutePoint{Latitude: last.Latitude, Longitude: last.Longitude}

	for i := 1; i < len(events); i++ {
		prev := orb.Point{events[i-1].Longitude, events[i-1].Latitude}
		curr := orb.Point{events[i].Longitude, events[i].Latitude}
		stats.RouteMeters += geo.DistanceHaversine(prev, curr)
	}

	return stats, nil
}

// Erase removes every event of the order. 404 semantics when nothing was
// there to delete.
func (s *trackingService) Erase(ctx context.Context, orderID int64) (int64, error) {
	deleted, err := s.tracking.DeleteByOrder(ctx, orderID)
	if err != nil {
		return 0, domainerrors.ErrTrackingStoreFailed.WrapMessage("failed to delete tracking events")
	}
	if deleted == 0 {
		return 0, domainerrors.ErrTrackingNotFound
	}

	return deleted, nil
}

func (s *trackingService) requireOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

func aggregateSpeeds(stats *usecase.RouteStats, events []*entity.TrackingEvent) {
	var sum float64
	var count int
	var maxSpeed, minSpeed float64

	for _, event := range events {
		if event.SpeedKmh == nil {
			continue
		}
		speed := *event.SpeedKmh
		if count == 0 {
			maxSpeed, minSpeed = speed, speed
		} else {
			if speed > maxSpeed {
				maxSpeed = speed
			}
			if speed < minSpeed {
				minSpeed = speed
			}
		}
		sum += speed
		count++
	}

	if count == 0 {
		return
	}

	avg := sum / float64(count)
	stats.AvgSpeedKmh = &avg
	stats.MaxSpeedKmh = &maxSpeed
	stats.MinSpeedKmh = &minSpeed
}

func aggregateTimes(stats *usecase.RouteStats, events []*entity.TrackingEvent) {
	first := events[0].Timestamp
	last := events[len(events)-1].Timestamp
	stats.FirstSeen = &first
	stats.LastSeen = &last

	if len(events) >= 2 {
		transit := last.Sub(first)
		stats.TransitTime = &transit
		stats.TransitTimeText = util.FormatDuration(transit)
	}
}
