// Package queries contains the read side: handlers that select straight from
// the database into response structs without loading aggregates.
package queries

import (
	"database/sql"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderResponse is the read model of a forwarding order. CarrierID and
// CarrierShortName are empty for company truck orders.
type OrderResponse struct {
	ID               kernel.UUID
	CarrierID        *kernel.UUID
	CarrierShortName string
	Goods            string
	Status           order.Status
	CreatedAt        time.Time
}

const selectOrders = `
	SELECT
		o.id,
		o.carrier_id,
		c.short_name,
		o.goods,
		o.status,
		o.created_at
	FROM orders o
	LEFT JOIN carriers c ON c.id = o.carrier_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var (
		resp      OrderResponse
		id        uuid.UUID
		carrierID uuid.NullUUID
		shortName sql.NullString
		status    string
	)

	if err := row.Scan(&id, &carrierID, &shortName, &resp.Goods, &status, &resp.CreatedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	if carrierID.Valid {
		cID, cErr := kernel.UUIDFromBytes(carrierID.UUID[:])
		if cErr != nil {
			return OrderResponse{}, cErr
		}
		resp.CarrierID = &cID
		resp.CarrierShortName = shortName.String
	}

	if resp.Status, err = order.StatusFromString(status); err != nil {
		return OrderResponse{}, err
	}
	resp.CreatedAt = resp.CreatedAt.UTC()

	return resp, nil
}
