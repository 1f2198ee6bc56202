package impl

import (
	"context"
	"testing"

	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	mockRepo "rumbo/internal/mocks/repository"
	"rumbo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(customerRepo)

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
	}
}

func TestCustomerService_ListCustomers_NormalizesLimit(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		List(ctx, 10).
		Return([]*entity.Customer{{ID: 1, Name: "Maria Lopez", TotalOrders: 4}}, nil)

	customers, err := fx.service.ListCustomers(ctx, -3)

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(4), customers[0].TotalOrders)

	fx.customerRepo.EXPECT().
		List(ctx, 100).
		Return([]*entity.Customer{}, nil)

	_, err = fx.service.ListCustomers(ctx, 999)
	require.NoError(t, err)
}

func TestCustomerService_GetCustomerWithOrders(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Customer{ID: 7, Name: "Maria Lopez"}
	orders := []*entity.Order{
		{ID: 42, CustomerID: 7, Status: entity.StatusDelivered},
		{ID: 41, CustomerID: 7, Status: entity.StatusCancelled},
	}

	fx.customerRepo.EXPECT().
		FindWithOrders(ctx, int64(7)).
		Return(customer, orders, nil)

	out, err := fx.service.GetCustomerWithOrders(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, customer, out.Customer)
	assert.Len(t, out.Orders, 2)
}

func TestCustomerService_GetCustomerWithOrders_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		FindWithOrders(ctx, int64(404)).
		Return(nil, nil, repository.ErrCustomerNotFound)

	out, err := fx.service.GetCustomerWithOrders(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
