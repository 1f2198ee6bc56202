// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"
	"time"

	"rumbo/internal/domain/entity"
)

// CustomerInput carries the customer fields submitted with a new order.
type CustomerInput struct {
	Name    string  `json:"nombre"`
	Email   string  `json:"email"`
	Phone   *string `json:"telefono,omitempty"`
	Address *string `json:"direccion,omitempty"`
}

// CreateOrderInput is the input for creating an order with its customer.
type CreateOrderInput struct {
	Customer           CustomerInput `json:"cliente"`
	Description        string        `json:"descripcion"`
	OriginAddress      string        `json:"direccion_origen"`
	DestinationAddress string        `json:"direccion_destino"`
}

// CreateOrderOutput reports the identifiers resolved by the creation
// transaction. CustomerReused is true when an existing customer row matched
// the submitted email.
type CreateOrderOutput struct {
	OrderID        int64 `json:"orden_id"`
	CustomerID     int64 `json:"cliente_id"`
	CustomerReused bool  `json:"cliente_existente"`
}

// SyncResult reports the outcome of the delivery synchronization against the
// Tracking Store. Error is non-empty when the synchronization failed; the
// order update itself is never rolled back for it.
type SyncResult struct {
	ModifiedCount int64  `json:"documentos_actualizados"`
	Error         string `json:"error,omitempty"`
}

// UpdateStatusOutput is the result of an order status transition.
type UpdateStatusOutput struct {
	OrderID   int64              `json:"orden_id"`
	NewStatus entity.OrderStatus `json:"nuevo_estado"`

	// Sync is only set when the transition was to Delivered.
	Sync *SyncResult `json:"sincronizacion,omitempty"`
}

// LastLocation is the latest known position of an order, read from the
// Tracking Store during the federated location lookup.
type LastLocation struct {
	Latitude  float64   `json:"latitud"`
	Longitude float64   `json:"longitud"`
	Timestamp time.Time `json:"timestamp"`
	Active    bool      `json:"activo"`
	SpeedKmh  *float64  `json:"velocidad_kmh,omitempty"`
}

// OrderWithLocation is the federated read result: the order and owning
// customer from the Order Ledger plus the latest location, which is nil when
// the order has no events or the Tracking Store could not be reached.
type OrderWithLocation struct {
	Order        *entity.Order    `json:"orden"`
	Customer     *entity.Customer `json:"cliente"`
	LastLocation *LastLocation    `json:"ultima_ubicacion,omitempty"`
}

// OrderUsecase defines order lifecycle and federated read use cases.
type OrderUsecase interface {
	// CreateOrder resolves the customer by email (reuse or create) and
	// inserts the order with status Pending, all in one transaction.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)

	// UpdateStatus transitions the order to newStatus. A transition to
	// Delivered additionally deactivates the order's tracking events; a
	// failure there is reported through the output, not as an error.
	UpdateStatus(ctx context.Context, orderID int64, newStatus entity.OrderStatus) (*UpdateStatusOutput, error)

	// GetOrder returns the order with its customer name.
	GetOrder(ctx context.Context, orderID int64) (*entity.Order, error)

	// ListOrders returns orders newest-first, optionally filtered by status.
	ListOrders(ctx context.Context, status *entity.OrderStatus, limit int) ([]*entity.Order, error)

	// GetOrderLocation performs the federated order + latest location read.
	GetOrderLocation(ctx context.Context, orderID int64) (*OrderWithLocation, error)
}
