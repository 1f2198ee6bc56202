// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rumbo/internal/delivery/context"
	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/domain/repository"
	"rumbo/internal/errors"
	"rumbo/internal/usecase"
)

const (
	defaultOrderListLimit = 10
	maxOrderListLimit     = 100
)

type orderService struct {
	orders    repository.OrderRepository
	tracking  repository.TrackingRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orders repository.OrderRepository,
	tracking repository.TrackingRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:    orders,
		tracking:  tracking,
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder resolves the customer by email and inserts the order, all
// inside one transaction. An existing customer is reused as-is: submitted
// customer fields are ignored when the email already matches a row. The
// order's status is always forced to Pending regardless of input.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	var out usecase.CreateOrderOutput

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		customers := f.NewCustomerRepository()
		orders := f.NewOrderRepository()

		customer, err := customers.FindByEmail(ctx, input.Customer.Email)
		switch {
		case err == nil:
			out.CustomerID = customer.ID
			out.CustomerReused = true
		case errors.Is(err, repository.ErrCustomerNotFound):
			newCustomer := &entity.Customer{
				Name:    input.Customer.Name,
				Email:   input.Customer.Email,
				Phone:   input.Customer.Phone,
				Address: input.Customer.Address,
			}
			if err := customers.Create(ctx, newCustomer); err != nil {
				return err
			}
			out.CustomerID = newCustomer.ID
		default:
			return errors.Wrap(err, "failed to find customer by email")
		}

		order := &entity.Order{
			CustomerID:         out.CustomerID,
			Description:        input.Description,
			Status:             entity.StatusPending,
			OriginAddress:      input.OriginAddress,
			DestinationAddress: input.DestinationAddress,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		out.OrderID = order.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateStatus transitions the order and, on Delivered, synchronizes the
// Tracking Store. The order update commits before synchronization is
// attempted: a sync failure is downgraded to an advisory field so that order
// state is never held hostage by tracking-store availability.
func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, newStatus entity.OrderStatus) (*usecase.UpdateStatusOutput, error) {
	if !newStatus.Valid() {
		return nil, domainerrors.ErrOrderStatusInvalid.
			WithDetails("status must be one of: Pending, Processing, In Transit, Delivered, Cancelled")
	}

	if err := s.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	out := &usecase.UpdateStatusOutput{
		OrderID:   orderID,
		NewStatus: newStatus,
	}

	if newStatus == entity.StatusDelivered {
		out.Sync = s.syncDeliveredTracking(ctx, orderID)
	}

	return out, nil
}

// syncDeliveredTracking deactivates every tracking event of a delivered
// order. Errors are captured, never propagated.
func (s *orderService) syncDeliveredTracking(ctx context.Context, orderID int64) *usecase.SyncResult {
	modified, err := s.tracking.DeactivateByOrder(ctx, orderID, time.Now().UTC())
	if err != nil {
		s.log(ctx).Warn("delivery tracking synchronization failed",
			slog.Int64("orderID", orderID),
			slog.Any("error", err),
		)

		return &usecase.SyncResult{Error: err.Error()}
	}

	return &usecase.SyncResult{ModifiedCount: modified}
}

// GetOrder returns one order with its customer name.
func (s *orderService) GetOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

// ListOrders returns orders newest-first, optionally filtered by status.
func (s *orderService) ListOrders(ctx context.Context, status *entity.OrderStatus, limit int) ([]*entity.Order, error) {
	if status != nil && !status.Valid() {
		return nil, domainerrors.ErrOrderStatusInvalid.
			WithDetails("unknown status filter: " + status.String())
	}

	if limit <= 0 {
		limit = defaultOrderListLimit
	}
	if limit > maxOrderListLimit {
		limit = maxOrderListLimit
	}

	orders, err := s.orders.List(ctx, status, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrderLocation is the federated read: the order fetch is fatal, the
// tracking fetch is not. A tracking lookup failure yields a nil location
// with a warn log; callers see the order either way.
func (s *orderService) GetOrderLocation(ctx context.Context, orderID int64) (*usecase.OrderWithLocation, error) {
	order, customer, err := s.orders.FindWithCustomer(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order with customer")
	}

	out := &usecase.OrderWithLocation{
		Order:    order,
		Customer: customer,
	}

	event, err := s.tracking.FindLatest(ctx, orderID)
	if err != nil {
		s.log(ctx).Warn("tracking lookup failed during federated read",
			slog.Int64("orderID", orderID),
			slog.Any("error", err),
		)

		return out, nil
	}
	if event == nil {
		return out, nil
	}

	out.LastLocation = &usecase.LastLocation{
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Timestamp: event.Timestamp,
		Active:    event.Active,
		SpeedKmh:  event.SpeedKmh,
	}

	return out, nil
}
