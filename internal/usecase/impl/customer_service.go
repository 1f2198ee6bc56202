package impl

import (
	"context"

	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	"rumbo/internal/errors"
	"rumbo/internal/usecase"
)

const (
	defaultCustomerListLimit = 10
	maxCustomerListLimit     = 100
)

type customerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(customers repository.CustomerRepository) usecase.CustomerUsecase {
	return &customerService{
		customers: customers,
	}
}

// ListCustomers returns customers newest-registration-first with their order
// counts populated.
func (s *customerService) ListCustomers(ctx context.Context, limit int) ([]*entity.Customer, error) {
	if limit <= 0 {
		limit = defaultCustomerListLimit
	}
	if limit > maxCustomerListLimit {
		limit = maxCustomerListLimit
	}

	customers, err := s.customers.List(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// GetCustomerWithOrders returns one customer and their orders newest-first.
func (s *customerService) GetCustomerWithOrders(ctx context.Context, customerID int64) (*usecase.CustomerWithOrders, error) {
	customer, orders, err := s.customers.FindWithOrders(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer with orders")
	}

	return &usecase.CustomerWithOrders{Customer: customer, Orders: orders}, nil
}
