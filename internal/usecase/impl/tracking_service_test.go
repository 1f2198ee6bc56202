package impl

import (
	"context"
	"testing"
	"time"

	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	mockRepo "rumbo/internal/mocks/repository"
	"rumbo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service   usecase.TrackingUsecase
	tracking  *mockRepo.MockTrackingRepository
	orderRepo *mockRepo.MockOrderRepository
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	tracking := mockRepo.NewMockTrackingRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewTrackingService(tracking, orderRepo)

	return trackingServiceFixtures{
		service:   service,
		tracking:  tracking,
		orderRepo: orderRepo,
	}
}

func floatPtr(v float64) *float64 { return &v }

func trackingEvent(orderID int64, lat, lng float64, ts time.Time, speed *float64) *entity.TrackingEvent {
	return &entity.TrackingEvent{
		OrderID:   orderID,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: ts,
		Active:    true,
		SpeedKmh:  speed,
	}
}

func TestTrackingService_Record_DefaultsTimestampAndActive(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Order{ID: 5, Status: entity.StatusInTransit}, nil)

	before := time.Now().UTC()
	fx.tracking.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
		Run(func(ctx context.Context, event *entity.TrackingEvent) {
			assert.True(t, event.Active)
			assert.False(t, event.Timestamp.Before(before))
			assert.Equal(t, int64(5), event.OrderID)
		}).
		Return("68f1c2a9e4b0aa00123fdc01", nil)

	id, err := fx.service.Record(ctx, 5, &usecase.RecordTrackingInput{
		Latitude:  19.4326,
		Longitude: -99.1332,
	})

	require.NoError(t, err)
	assert.Equal(t, "68f1c2a9e4b0aa00123fdc01", id)
}

func TestTrackingService_Record_HonorsClientTimestamp(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	reported := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Order{ID: 5}, nil)

	fx.tracking.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
		Run(func(ctx context.Context, event *entity.TrackingEvent) {
			assert.Equal(t, reported, event.Timestamp)
		}).
		Return("68f1c2a9e4b0aa00123fdc02", nil)

	_, err := fx.service.Record(ctx, 5, &usecase.RecordTrackingInput{
		Latitude:  19.4326,
		Longitude: -99.1332,
		Timestamp: &reported,
	})

	require.NoError(t, err)
}

func TestTrackingService_Record_UnknownOrder(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrOrderNotFound)

	id, err := fx.service.Record(ctx, 404, &usecase.RecordTrackingInput{Latitude: 1, Longitude: 2})

	require.Error(t, err)
	assert.Empty(t, id)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestTrackingService_Record_StoreFailure(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Order{ID: 5}, nil)

	fx.tracking.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
		Return("", errors.New("server selection timeout"))

	_, err := fx.service.Record(ctx, 5, &usecase.RecordTrackingInput{Latitude: 1, Longitude: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTrackingStoreFailed)
}

func TestTrackingService_History_NormalizesLimit(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	order := &entity.Order{ID: 5}

	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(order, nil)
	fx.tracking.EXPECT().
		FindByOrder(ctx, int64(5), 50).
		Return([]*entity.TrackingEvent{}, nil)

	history, err := fx.service.History(ctx, 5, 0)

	require.NoError(t, err)
	assert.Equal(t, order, history.Order)
	assert.Empty(t, history.Events)
}

func TestTrackingService_Stats_EmptyStream(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Order{ID: 5}, nil)
	fx.tracking.EXPECT().
		FindByOrderChronological(ctx, int64(5)).
		Return([]*entity.TrackingEvent{}, nil)

	stats, err := fx.service.Stats(ctx, 5)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalPoints)
	assert.Nil(t, stats.AvgSpeedKmh)
	assert.Nil(t, stats.FirstSeen)
	assert.Nil(t, stats.Start)
	assert.Zero(t, stats.RouteMeters)
}

func TestTrackingService_Stats_AggregatesRoute(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	events := []*entity.TrackingEvent{
		trackingEvent(5, 19.4326, -99.1332, base, floatPtr(20)),
		trackingEvent(5, 19.4400, -99.1300, base.Add(10*time.Minute), nil),
		trackingEvent(5, 19.4500, -99.1200, base.Add(25*time.Minute), floatPtr(60)),
	}

	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Order{ID: 5}, nil)
	fx.tracking.EXPECT().FindByOrderChronological(ctx, int64(5)).Return(events, nil)

	stats, err := fx.service.Stats(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPoints)

	// Events without a speed reading are excluded from the speed aggregates.
	require.NotNil(t, stats.AvgSpeedKmh)
	assert.InDelta(t, 40.0, *stats.AvgSpeedKmh, 0.001)
	assert.Equal(t, 60.0, *stats.MaxSpeedKmh)
	assert.Equal(t, 20.0, *stats.MinSpeedKmh)

	require.NotNil(t, stats.TransitTime)
	assert.Equal(t, 25*time.Minute, *stats.TransitTime)
	assert.Equal(t, "25m0s", stats.TransitTimeText)

	require.NotNil(t, stats.Start)
	assert.Equal(t, 19.4326, stats.Start.Latitude)
	require.NotNil(t, stats.End)
	assert.Equal(t, 19.4500, stats.End.Latitude)

	// Two haversine legs of roughly one and two kilometers.
	assert.Greater(t, stats.RouteMeters, 2000.0)
	assert.Less(t, stats.RouteMeters, 4000.0)
}

func TestTrackingService_Erase_ReturnsDeletedCount(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	fx.tracking.EXPECT().DeleteByOrder(ctx, int64(5)).Return(int64(12), nil)

	deleted, err := fx.service.Erase(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
}

func TestTrackingService_Erase_NothingToDelete(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	fx.tracking.EXPECT().DeleteByOrder(ctx, int64(5)).Return(int64(0), nil)

	deleted, err := fx.service.Erase(ctx, 5)

	require.Error(t, err)
	assert.Zero(t, deleted)
	assert.ErrorIs(t, err, domainerrors.ErrTrackingNotFound)
}
