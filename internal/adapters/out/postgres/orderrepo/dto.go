// Package orderrepo persists forwarding orders with GORM.
package orderrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. Status is stored by wire
// name so that the enum order can change without a data migration.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CarrierID *uuid.UUID `gorm:"type:uuid;index"`
	Goods     string     `gorm:"type:text;not null"`
	Status    string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var carrierID *uuid.UUID
	if id := aggregate.Carrier(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		CarrierID: carrierID,
		Goods:     aggregate.Goods(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, carrierID, dto.Goods, status, dto.CreatedAt)
}
