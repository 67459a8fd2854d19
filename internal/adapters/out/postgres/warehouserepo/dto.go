// Package warehouserepo holds the warehouses table. Warehouses are
// reference data maintained outside this service and only read here.
package warehouserepo

import (
	"github.com/google/uuid"
)

type WarehouseDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null;uniqueIndex"`
	Address string    `gorm:"not null"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}
