package entity

import (
	"time"
)

// OrderStatus is the lifecycle state of an order. The set is closed and
// case-sensitive; anything outside it is rejected before touching storage.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusInTransit  OrderStatus = "In Transit"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every valid status, in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusProcessing,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}
}

// Valid reports whether s is a member of the closed status enumeration.
// Transitions between members are unrestricted; only membership is checked.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}

	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is a shipment request owned by a customer. The Order Ledger is the
// system of record for its lifecycle; tracking events only reference it by ID.
type Order struct {
	ID                 int64       `json:"id"`
	CustomerID         int64       `json:"cliente_id"`
	Description        string      `json:"descripcion"`
	Status             OrderStatus `json:"estado"`
	OriginAddress      string      `json:"direccion_origen"`
	DestinationAddress string      `json:"direccion_destino"`
	CreatedAt          time.Time   `json:"fecha_creacion"`
	UpdatedAt          time.Time   `json:"fecha_actualizacion"` // Refreshed on every status change.

	// CustomerName is populated by joined reads only.
	CustomerName string `json:"cliente_nombre,omitempty"`
}

// OrderSummary is the subset of order fields attached to proximity results.
type OrderSummary struct {
	Description        string `json:"descripcion"`
	Status             string `json:"estado"`
	DestinationAddress string `json:"direccion_destino"`
}
