package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "rumbo/internal/delivery/context"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	tracking  *mockRepo.MockTrackingRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	tracking := mockRepo.NewMockTrackingRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(orderRepo, tracking, txManager, logger)

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		tracking:  tracking,
		txManager: txManager,
	}
}

func TestOrderService_CreateOrder_NewCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Customer: usecase.CustomerInput{
			Name:  "Maria Lopez",
			Email: "maria@example.com",
		},
		Description:        "Electronics shipment",
		OriginAddress:      "Warehouse 4",
		DestinationAddress: "Av. Siempre Viva 742",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Customer.Email).
				Return(nil, repository.ErrCustomerNotFound)

			mockCustomerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Customer")).
				Run(func(ctx context.Context, customer *entity.Customer) {
					customer.ID = 7
				}).
				Return(nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, entity.StatusPending, order.Status)
					assert.Equal(t, int64(7), order.CustomerID)
					order.ID = 42
				}).
				Return(nil)

			return fn(mockFactory)
		})

	out, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.OrderID)
	assert.Equal(t, int64(7), out.CustomerID)
	assert.False(t, out.CustomerReused)
}

func TestOrderService_CreateOrder_ReusesCustomerByEmail(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Customer: usecase.CustomerInput{
			Name:  "Another Name Entirely",
			Email: "maria@example.com",
		},
		Description:        "Second shipment",
		OriginAddress:      "Warehouse 4",
		DestinationAddress: "Av. Siempre Viva 742",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			// No customer Create call: the existing row wins.
			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Customer.Email).
				Return(&entity.Customer{ID: 7, Name: "Maria Lopez", Email: input.Customer.Email}, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 43
				}).
				Return(nil)

			return fn(mockFactory)
		})

	out, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(43), out.OrderID)
	assert.Equal(t, int64(7), out.CustomerID)
	assert.True(t, out.CustomerReused)
}

func TestOrderService_CreateOrder_LookupFailureAbortsTransaction(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Customer:           usecase.CustomerInput{Name: "Maria", Email: "maria@example.com"},
		Description:        "Shipment",
		OriginAddress:      "A",
		DestinationAddress: "B",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Customer.Email).
				Return(nil, errors.New("connection reset"))

			return fn(mockFactory)
		})

	out, err := fx.service.CreateOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, out)
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	out, err := fx.service.UpdateStatus(context.Background(), 1, entity.OrderStatus("Shipped"))

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStatusInvalid)
}

func TestOrderService_UpdateStatus_RejectsLowercaseStatus(t *testing.T) {
	fx := createTestOrderService(t)

	// Status values are case-sensitive.
	out, err := fx.service.UpdateStatus(context.Background(), 1, entity.OrderStatus("delivered"))

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStatusInvalid)
}

func TestOrderService_UpdateStatus_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(99), entity.StatusProcessing).
		Return(repository.ErrOrderNotFound)

	out, err := fx.service.UpdateStatus(ctx, 99, entity.StatusProcessing)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateStatus_NonDeliveredSkipsSync(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(5), entity.StatusInTransit).
		Return(nil)

	out, err := fx.service.UpdateStatus(ctx, 5, entity.StatusInTransit)

	require.NoError(t, err)
	assert.Equal(t, int64(5), out.OrderID)
	assert.Equal(t, entity.StatusInTransit, out.NewStatus)
	assert.Nil(t, out.Sync)
}

func TestOrderService_UpdateStatus_DeliveredDeactivatesTracking(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(5), entity.StatusDelivered).
		Return(nil)

	fx.tracking.EXPECT().
		DeactivateByOrder(ctx, int64(5), mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	out, err := fx.service.UpdateStatus(ctx, 5, entity.StatusDelivered)

	require.NoError(t, err)
	require.NotNil(t, out.Sync)
	assert.Equal(t, int64(3), out.Sync.ModifiedCount)
	assert.Empty(t, out.Sync.Error)
}

func TestOrderService_UpdateStatus_SyncFailureDoesNotFailUpdate(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(5), entity.StatusDelivered).
		Return(nil)

	fx.tracking.EXPECT().
		DeactivateByOrder(ctx, int64(5), mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("tracking store unreachable"))

	out, err := fx.service.UpdateStatus(ctx, 5, entity.StatusDelivered)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, out.NewStatus)
	require.NotNil(t, out.Sync)
	assert.Contains(t, out.Sync.Error, "tracking store unreachable")
}

func TestOrderService_UpdateStatus_SyncWarnUsesRequestScopedLogger(t *testing.T) {
	fx := createTestOrderService(t)

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).
		With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(5), entity.StatusDelivered).
		Return(nil)

	fx.tracking.EXPECT().
		DeactivateByOrder(ctx, int64(5), mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("tracking store unreachable"))

	_, err := fx.service.UpdateStatus(ctx, 5, entity.StatusDelivered)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "delivery tracking synchronization failed")
	assert.Contains(t, buf.String(), "request_id=req-123")
}

func TestOrderService_ListOrders_NormalizesLimit(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		List(ctx, (*entity.OrderStatus)(nil), 10).
		Return([]*entity.Order{}, nil)

	_, err := fx.service.ListOrders(ctx, nil, 0)
	require.NoError(t, err)

	fx.orderRepo.EXPECT().
		List(ctx, (*entity.OrderStatus)(nil), 100).
		Return([]*entity.Order{}, nil)

	_, err = fx.service.ListOrders(ctx, nil, 5000)
	require.NoError(t, err)
}

func TestOrderService_ListOrders_RejectsUnknownStatusFilter(t *testing.T) {
	fx := createTestOrderService(t)

	bogus := entity.OrderStatus("Missing")
	orders, err := fx.service.ListOrders(context.Background(), &bogus, 10)

	require.Error(t, err)
	assert.Nil(t, orders)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStatusInvalid)
}

func TestOrderService_GetOrderLocation_WithLatestEvent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: 5, CustomerID: 7, Status: entity.StatusInTransit}
	customer := &entity.Customer{ID: 7, Name: "Maria Lopez"}
	speed := 48.5
	event := &entity.TrackingEvent{
		OrderID:   5,
		Latitude:  19.4326,
		Longitude: -99.1332,
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Active:    true,
		SpeedKmh:  &speed,
	}

	fx.orderRepo.EXPECT().FindWithCustomer(ctx, int64(5)).Return(order, customer, nil)
	fx.tracking.EXPECT().FindLatest(ctx, int64(5)).Return(event, nil)

	out, err := fx.service.GetOrderLocation(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, order, out.Order)
	assert.Equal(t, customer, out.Customer)
	require.NotNil(t, out.LastLocation)
	assert.Equal(t, 19.4326, out.LastLocation.Latitude)
	assert.Equal(t, -99.1332, out.LastLocation.Longitude)
	assert.True(t, out.LastLocation.Active)
}

func TestOrderService_GetOrderLocation_NoEvents(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: 5, CustomerID: 7, Status: entity.StatusPending}
	customer := &entity.Customer{ID: 7, Name: "Maria Lopez"}

	fx.orderRepo.EXPECT().FindWithCustomer(ctx, int64(5)).Return(order, customer, nil)
	fx.tracking.EXPECT().FindLatest(ctx, int64(5)).Return(nil, nil)

	out, err := fx.service.GetOrderLocation(ctx, 5)

	require.NoError(t, err)
	assert.Nil(t, out.LastLocation)
}

func TestOrderService_GetOrderLocation_TrackingOutageDegrades(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: 5, CustomerID: 7, Status: entity.StatusInTransit}
	customer := &entity.Customer{ID: 7, Name: "Maria Lopez"}

	fx.orderRepo.EXPECT().FindWithCustomer(ctx, int64(5)).Return(order, customer, nil)
	fx.tracking.EXPECT().FindLatest(ctx, int64(5)).Return(nil, errors.New("no reachable servers"))

	out, err := fx.service.GetOrderLocation(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, order, out.Order)
	assert.Nil(t, out.LastLocation)
}

func TestOrderService_GetOrderLocation_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindWithCustomer(ctx, int64(404)).
		Return(nil, nil, repository.ErrOrderNotFound)

	out, err := fx.service.GetOrderLocation(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
