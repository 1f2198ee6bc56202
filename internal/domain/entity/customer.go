// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Customer is the owning party of one or more orders. Customers are never
// created directly through the API: the first order referencing a new email
// creates the row, and later orders with the same email reuse it.
type Customer struct {
	ID           int64     `json:"id"`                  // Surrogate key assigned by the Order Ledger.
	Name         string    `json:"nombre"`              // Full display name.
	Email        string    `json:"email"`               // Unique contact email, used for idempotent reuse.
	Phone        *string   `json:"telefono,omitempty"`  // Optional phone number.
	Address      *string   `json:"direccion,omitempty"` // Optional billing/home address.
	RegisteredAt time.Time `json:"fecha_registro"`      // Timestamp of the first order that created this customer.

	// TotalOrders is populated by listing queries only; zero elsewhere.
	TotalOrders int64 `json:"total_ordenes"`
}
