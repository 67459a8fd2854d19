package queries

import (
	"context"
	"database/sql"
	"errors"

	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectOrders+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()
	if row.Err() != nil {
		return OrderResponse{}, errs.NewInfrastructureError("orders", row.Err())
	}

	resp, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundErrorWithCause("order", query.OrderID().String(), err)
	}
	if err != nil {
		return OrderResponse{}, errs.NewInfrastructureError("orders", err)
	}

	return resp, nil
}
