package postgres

import (
	"context"
	"time"

	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	"rumbo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order and backfills the generated ID and timestamps.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid customer reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrOrderStatusInvalid.WrapMessage("status rejected by check constraint")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order joined with its customer's name.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindWithCustomer retrieves an order and its full customer record.
func (repo *orderRepository) FindWithCustomer(ctx context.Context, id int64) (*entity.Order, *entity.Customer, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, repository.ErrOrderNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find order with customer")
	}

	return toOrderDomain(&orderM), toCustomerDomain(orderM.Customer), nil
}

// List retrieves orders newest-first with customer names, optionally
// filtered by status.
func (repo *orderRepository) List(ctx context.Context, status *entity.OrderStatus, limit int) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Customer").
		Order("fecha_creacion DESC").
		Limit(limit)

	if status != nil {
		query = query.Where("estado = ?", status.String())
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the status and refreshes fecha_actualizacion in a single
// statement. The membership check belongs to the use case layer; this only
// reports whether a row matched.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"estado":              status.String(),
			"fecha_actualizacion": time.Now().UTC(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrOrderStatusInvalid.WrapMessage("status rejected by check constraint")
		}
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindSummariesByIDs batch-fetches summary fields for the given IDs in one
// query. Missing IDs are simply absent from the returned map.
func (repo *orderRepository) FindSummariesByIDs(ctx context.Context, ids []int64) (map[int64]entity.OrderSummary, error) {
	summaries := make(map[int64]entity.OrderSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	var rows []struct {
		ID                 int64
		Description        string `gorm:"column:descripcion"`
		Status             string `gorm:"column:estado"`
		DestinationAddress string `gorm:"column:direccion_destino"`
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("id, descripcion, estado, direccion_destino").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch order summaries")
	}

	for _, row := range rows {
		summaries[row.ID] = entity.OrderSummary{
			Description:        row.Description,
			Status:             row.Status,
			DestinationAddress: row.DestinationAddress,
		}
	}

	return summaries, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                 data.ID,
		CustomerID:         data.CustomerID,
		Description:        data.Description,
		Status:             entity.OrderStatus(data.Status),
		OriginAddress:      data.OriginAddress,
		DestinationAddress: data.DestinationAddress,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
	if data.Customer != nil {
		order.CustomerName = data.Customer.Name
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                 data.ID,
		CustomerID:         data.CustomerID,
		Description:        data.Description,
		Status:             data.Status.String(),
		OriginAddress:      data.OriginAddress,
		DestinationAddress: data.DestinationAddress,
	}
}
