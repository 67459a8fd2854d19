package queries

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllCarriersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCarriersQueryHandler(db *gorm.DB) GetAllCarriersQueryHandler {
	return GetAllCarriersQueryHandler{db: db}
}

// Handle returns every carrier sorted by short name.
func (h GetAllCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCarriersQuery,
) ([]GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			short_name,
			vat_number,
			description,
			term_of_payment_days,
			insurance_expires_on,
			licence_expires_on
		FROM carriers
		ORDER BY short_name, id
	`).Rows()
	if err != nil {
		return nil, errs.NewInfrastructureError("carriers", err)
	}
	defer rows.Close()

	carriers := make([]GetAllCarriersQueryResponse, 0)
	for rows.Next() {
		var resp GetAllCarriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.FullName,
			&resp.ShortName,
			&resp.VatNumber,
			&resp.Description,
			&resp.TermOfPaymentDays,
			&resp.InsuranceExpiresOn,
			&resp.LicenceExpiresOn,
		)
		if err != nil {
			return nil, errs.NewInfrastructureError("carriers", err)
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = carrierID
		resp.InsuranceExpiresOn = calendarDay(resp.InsuranceExpiresOn)
		resp.LicenceExpiresOn = calendarDay(resp.LicenceExpiresOn)

		carriers = append(carriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewInfrastructureError("carriers", err)
	}

	return carriers, nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
