package queries

import (
	"context"

	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns non-terminal orders, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrders+`
		WHERE o.status NOT IN ?
		ORDER BY o.created_at, o.id
	`, terminalStatusNames()).Rows()
	if err != nil {
		return nil, errs.NewInfrastructureError("orders", err)
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewInfrastructureError("orders", err)
	}

	return orders, nil
}

func terminalStatusNames() []string {
	return []string{order.Unloaded.String(), order.Cancelled.String()}
}
