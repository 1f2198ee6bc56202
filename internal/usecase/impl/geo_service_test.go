package impl

import (
	"context"
	"testing"
	"time"

	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	mockRepo "rumbo/internal/mocks/repository"
	"rumbo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geoServiceFixtures holds all test dependencies for geo service tests.
type geoServiceFixtures struct {
	service   usecase.GeoUsecase
	tracking  *mockRepo.MockTrackingRepository
	orderRepo *mockRepo.MockOrderRepository
}

func createTestGeoService(t *testing.T) geoServiceFixtures {
	tracking := mockRepo.NewMockTrackingRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewGeoService(tracking, orderRepo)

	return geoServiceFixtures{
		service:   service,
		tracking:  tracking,
		orderRepo: orderRepo,
	}
}

func TestGeoService_FindNearby_RejectsOutOfRangeCoordinates(t *testing.T) {
	fx := createTestGeoService(t)
	ctx := context.Background()

	cases := []struct {
		name             string
		lat, lng, radius float64
	}{
		{"latitude too high", 90.1, 0, 100},
		{"latitude too low", -90.1, 0, 100},
		{"longitude too high", 0, 180.1, 100},
		{"longitude too low", 0, -180.1, 100},
		{"zero radius", 19.43, -99.13, 0},
		{"negative radius", 19.43, -99.13, -500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := fx.service.FindNearby(ctx, tc.lat, tc.lng, tc.radius)

			require.Error(t, err)
			assert.Nil(t, results)
			assert.ErrorIs(t, err, domainerrors.ErrGeoQueryInvalid)
		})
	}
}

func TestGeoService_FindNearby_EmptyResult(t *testing.T) {
	fx := createTestGeoService(t)

	ctx := context.Background()
	fx.tracking.EXPECT().
		FindNearby(ctx, 19.4326, -99.1332, 5000.0).
		Return([]*entity.TrackingEvent{}, nil)

	results, err := fx.service.FindNearby(ctx, 19.4326, -99.1332, 5000)

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestGeoService_FindNearby_EnrichesWithOrderSummaries(t *testing.T) {
	fx := createTestGeoService(t)

	ctx := context.Background()
	now := time.Now().UTC()
	events := []*entity.TrackingEvent{
		trackingEvent(5, 19.4330, -99.1330, now, floatPtr(30)),
		trackingEvent(8, 19.4400, -99.1300, now, nil),
		trackingEvent(5, 19.4500, -99.1200, now.Add(-time.Minute), nil),
	}

	fx.tracking.EXPECT().
		FindNearby(ctx, 19.4326, -99.1332, 5000.0).
		Return(events, nil)

	// Order IDs are deduplicated before the batch summary fetch.
	fx.orderRepo.EXPECT().
		FindSummariesByIDs(ctx, []int64{5, 8}).
		Return(map[int64]entity.OrderSummary{
			5: {Description: "Electronics shipment", Status: entity.StatusInTransit.String(), DestinationAddress: "Av. Siempre Viva 742"},
		}, nil)

	results, err := fx.service.FindNearby(ctx, 19.4326, -99.1332, 5000)

	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, int64(5), results[0].OrderID)
	assert.Equal(t, "Electronics shipment", results[0].Summary.Description)
	assert.Greater(t, results[0].DistanceMeters, 0.0)
	assert.Less(t, results[0].DistanceMeters, results[2].DistanceMeters)

	// An event whose order vanished from the ledger keeps an empty summary.
	assert.Equal(t, int64(8), results[1].OrderID)
	assert.Empty(t, results[1].Summary.Description)
}
