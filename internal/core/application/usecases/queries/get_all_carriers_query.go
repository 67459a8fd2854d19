package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrGetAllCarriersQueryIsNotConstructed = errors.New(
	"GetAllCarriersQuery must be created via NewGetAllCarriersQuery constructor",
)

type GetAllCarriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCarriersQuery() GetAllCarriersQuery {
	return GetAllCarriersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCarriersQueryIsNotConstructed)
}

// GetAllCarriersQueryResponse carries document dates as calendar days in UTC.
type GetAllCarriersQueryResponse struct {
	ID                 kernel.UUID
	FullName           string
	ShortName          string
	VatNumber          string
	Description        string
	TermOfPaymentDays  int
	InsuranceExpiresOn time.Time
	LicenceExpiresOn   time.Time
}
