package usecase

import (
	"context"

	"rumbo/internal/domain/entity"
)

// CustomerWithOrders is a customer detail read joined with their orders,
// newest-first.
type CustomerWithOrders struct {
	Customer *entity.Customer `json:"cliente"`
	Orders   []*entity.Order  `json:"ordenes"`
}

// CustomerUsecase defines customer read use cases. Customers are only ever
// written through order creation.
type CustomerUsecase interface {
	// ListCustomers returns customers newest-registration-first with order
	// counts, capped at limit.
	ListCustomers(ctx context.Context, limit int) ([]*entity.Customer, error)

	// GetCustomerWithOrders returns one customer and their orders.
	GetCustomerWithOrders(ctx context.Context, customerID int64) (*CustomerWithOrders, error)
}
