package repository

import (
	"context"
)

// RepositoryFactory creates repository instances bound to one transaction.
// Only relational repositories participate; tracking writes never join a
// transaction.
type RepositoryFactory interface {
	NewCustomerRepository() CustomerRepository
	NewOrderRepository() OrderRepository
}

// TransactionManager runs a unit of work inside a single relational
// transaction: commit when fn returns nil, full rollback otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
