// Package model contains the GORM persistence structs for the Order Ledger.
// Column names follow the deployed schema, which predates this service.
package model

import (
	"time"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:nombre;type:varchar(100);not null"`
	Email        string    `gorm:"column:email;type:varchar(100);unique;not null"`
	Phone        *string   `gorm:"column:telefono;type:varchar(20)"`
	Address      *string   `gorm:"column:direccion;type:text"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
