// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"

	"rumbo/internal/domain/entity"
	"rumbo/internal/errors"
)

// Sentinel errors shared by repository implementations.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// CustomerRepository is the port for customer rows in the Order Ledger.
type CustomerRepository interface {
	// FindByEmail returns the customer with the exact email, or ErrCustomerNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Create inserts a new customer and sets the generated ID and registration
	// timestamp on the entity.
	Create(ctx context.Context, customer *entity.Customer) error

	// List returns customers newest-registration-first with their order counts
	// populated, capped at limit.
	List(ctx context.Context, limit int) ([]*entity.Customer, error)

	// FindWithOrders returns a customer and all their orders newest-first, or
	// ErrCustomerNotFound.
	FindWithOrders(ctx context.Context, id int64) (*entity.Customer, []*entity.Order, error)
}
