package impl

import (
	"context"
	"fmt"

	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	"rumbo/internal/errors"
	"rumbo/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type geoService struct {
	tracking repository.TrackingRepository
	orders   repository.OrderRepository
}

// NewGeoService creates a new geospatial query service instance
func NewGeoService(tracking repository.TrackingRepository, orders repository.OrderRepository) usecase.GeoUsecase {
	return &geoService{
		tracking: tracking,
		orders:   orders,
	}
}

// FindNearby runs the spherical proximity query over active tracking events,
// then enriches each match with its order summary in one batched ledger
// query. The spatial index's ascending-distance ordering is preserved.
func (s *geoService) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*usecase.NearbyResult, error) {
	if err := validateGeoQuery(lat, lng, radiusMeters); err != nil {
		return nil, err
	}

	events, err := s.tracking.FindNearby(ctx, lat, lng, radiusMeters)
	if err != nil {
		return nil, errors.Wrap(err, "proximity query failed")
	}
	if len(events) == 0 {
		return []*usecase.NearbyResult{}, nil
	}

	// Deduplicate order IDs, keeping first-seen (nearest) order.
	seen := make(map[int64]struct{}, len(events))
	orderIDs := make([]int64, 0, len(events))
	for _, event := range events {
		if _, ok := seen[event.OrderID]; ok {
			continue
		}
		seen[event.OrderID] = struct{}{}
		orderIDs = append(orderIDs, event.OrderID)
	}

	// An order ID with no ledger row yields an empty summary, not an error.
	summaries, err := s.orders.FindSummariesByIDs(ctx, orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch order summaries")
	}

	center := orb.Point{lng, lat}
	results := make([]*usecase.NearbyResult, 0, len(events))
	for _, event := range events {
		results = append(results, &usecase.NearbyResult{
			OrderID:        event.OrderID,
			Latitude:       event.Latitude,
			Longitude:      event.Longitude,
			Timestamp:      event.Timestamp,
			SpeedKmh:       event.SpeedKmh,
			DistanceMeters: geo.DistanceHaversine(center, orb.Point{event.Longitude, event.Latitude}),
			Summary:        summaries[event.OrderID],
		})
	}

	return results, nil
}

func validateGeoQuery(lat, lng, radiusMeters float64) error {
	switch {
	case lat < -90 || lat > 90:
		return domainerrors.ErrGeoQueryInvalid.
			WithDetails(fmt.Sprintf("latitude %v outside [-90, 90]", lat))
	case lng < -180 || lng > 180:
		return domainerrors.ErrGeoQueryInvalid.
			WithDetails(fmt.Sprintf("longitude %v outside [-180, 180]", lng))
	case radiusMeters <= 0:
		return domainerrors.ErrGeoQueryInvalid.
			WithDetails(fmt.Sprintf("radius %v must be greater than zero", radiusMeters))
	}

	return nil
}
