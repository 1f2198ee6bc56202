package postgres

import (
	"context"

	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	"rumbo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByEmail retrieves a customer by exact email match.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// Create persists a new customer and backfills the generated ID and
// registration timestamp on the entity.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailConflict.WrapMessage("email already registered")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.RegisteredAt = customerM.RegisteredAt

	return nil
}

// List retrieves customers newest-registration-first, each with the number
// of orders they own.
func (repo *customerRepository) List(ctx context.Context, limit int) ([]*entity.Customer, error) {
	var rows []struct {
		model.CustomerModel
		TotalOrders int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Select("customers.*, COUNT(orders.id) AS total_orders").
		Joins("LEFT JOIN orders ON orders.cliente_id = customers.id").
		Group("customers.id").
		Order("customers.fecha_registro DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		customer := toCustomerDomain(&rows[i].CustomerModel)
		customer.TotalOrders = rows[i].TotalOrders
		customers = append(customers, customer)
	}

	return customers, nil
}

// FindWithOrders retrieves one customer together with their orders,
// newest-first.
func (repo *customerRepository) FindWithOrders(ctx context.Context, id int64) (*entity.Customer, []*entity.Order, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, repository.ErrCustomerNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find customer by ID")
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("cliente_id = ?", id).
		Order("fecha_creacion DESC").
		Find(&orderModels).Error; err != nil {
		return nil, nil, errors.Wrap(err, "failed to find orders for customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return toCustomerDomain(&customerM), orders, nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Address:      data.Address,
		RegisteredAt: data.RegisteredAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
	}
}
