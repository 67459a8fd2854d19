package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrGetAllWarehousesQueryIsNotConstructed = errors.New(
	"GetAllWarehousesQuery must be created via NewGetAllWarehousesQuery constructor",
)

// GetAllWarehousesQuery lists the warehouses goods are loaded at or delivered
// to. Warehouses are reference data; there is no write side for them here.
type GetAllWarehousesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllWarehousesQuery() GetAllWarehousesQuery {
	return GetAllWarehousesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWarehousesQueryIsNotConstructed)
}

type GetAllWarehousesQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
}
