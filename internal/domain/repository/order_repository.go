package repository

import (
	"context"

	"rumbo/internal/domain/entity"
)

// OrderRepository is the port for order rows in the Order Ledger.
type OrderRepository interface {
	// Create inserts a new order and sets the generated ID and timestamps on
	// the entity. The caller decides the status; CreateOrder forces Pending.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order joined with its customer name, or
	// ErrOrderNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindWithCustomer returns the order together with the full owning
	// customer record, or ErrOrderNotFound.
	FindWithCustomer(ctx context.Context, id int64) (*entity.Order, *entity.Customer, error)

	// List returns orders newest-first with customer names populated,
	// optionally filtered by status, capped at limit.
	List(ctx context.Context, status *entity.OrderStatus, limit int) ([]*entity.Order, error)

	// UpdateStatus sets the status and refreshes the update timestamp in a
	// single statement. Returns ErrOrderNotFound when no row matched.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	// FindSummariesByIDs batch-fetches summary fields for the given order IDs
	// in one query. IDs with no matching row are simply absent from the map.
	FindSummariesByIDs(ctx context.Context, ids []int64) (map[int64]entity.OrderSummary, error)
}
