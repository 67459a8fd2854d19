package ports

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
)

// CarrierRepository persists carriers.
type CarrierRepository interface {
	// Add persists a new carrier. A duplicate VAT number yields
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Get loads a carrier or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAllWithDocumentsExpiringBefore returns carriers whose insurance or
	// licence expires before the given day.
	GetAllWithDocumentsExpiringBefore(ctx context.Context, day time.Time) ([]*carrier.Carrier, error)
}
