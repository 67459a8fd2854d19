package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllWarehousesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllWarehousesQueryHandler(db *gorm.DB) GetAllWarehousesQueryHandler {
	return GetAllWarehousesQueryHandler{db: db}
}

func (h GetAllWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetAllWarehousesQuery,
) ([]GetAllWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address
		FROM warehouses
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, errs.NewInfrastructureError("warehouses", err)
	}
	defer rows.Close()

	warehouses := make([]GetAllWarehousesQueryResponse, 0)
	for rows.Next() {
		var resp GetAllWarehousesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Address); err != nil {
			return nil, errs.NewInfrastructureError("warehouses", err)
		}

		warehouseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = warehouseID
		warehouses = append(warehouses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewInfrastructureError("warehouses", err)
	}

	return warehouses, nil
}
