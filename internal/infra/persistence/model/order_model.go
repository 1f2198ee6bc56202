package model

import (
	"time"
)

// OrderModel is the GORM-specific struct for the 'orders' table. The estado
// column carries a CHECK constraint mirroring the closed status enumeration.
type OrderModel struct {
	ID                 int64          `gorm:"column:id;primaryKey"`
	CustomerID         int64          `gorm:"column:cliente_id;not null;index:idx_orders_cliente_id"`
	Description        string         `gorm:"column:descripcion;type:text;not null"`
	Status             string         `gorm:"column:estado;type:varchar(20);not null;index:idx_orders_estado;check:estado IN ('Pending','Processing','In Transit','Delivered','Cancelled')"`
	OriginAddress      string         `gorm:"column:direccion_origen;type:text;not null"`
	DestinationAddress string         `gorm:"column:direccion_destino;type:text;not null"`
	CreatedAt          time.Time      `gorm:"column:fecha_creacion;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:fecha_actualizacion;autoUpdateTime"`
	Customer           *CustomerModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
