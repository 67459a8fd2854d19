// Package carrierrepo persists carriers with GORM.
package carrierrepo

import (
	"time"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CarrierDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName           string    `gorm:"not null"`
	ShortName          string    `gorm:"not null;index"`
	VatNumber          string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Description        string
	TermOfPaymentDays  int       `gorm:"not null"`
	InsuranceExpiresOn time.Time `gorm:"type:date;not null;index"`
	LicenceExpiresOn   time.Time `gorm:"type:date;not null;index"`
	CreatedAt          time.Time
}

func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	details := aggregate.Details()
	return CarrierDTO{
		ID:                 aggregate.ID().Bytes(),
		FullName:           details.FullName,
		ShortName:          details.ShortName,
		VatNumber:          details.VatNumber,
		Description:        details.Description,
		TermOfPaymentDays:  details.TermOfPaymentDays,
		InsuranceExpiresOn: details.InsuranceExpiresOn,
		LicenceExpiresOn:   details.LicenceExpiresOn,
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, carrier.Details{
		FullName:           dto.FullName,
		ShortName:          dto.ShortName,
		VatNumber:          dto.VatNumber,
		Description:        dto.Description,
		TermOfPaymentDays:  dto.TermOfPaymentDays,
		InsuranceExpiresOn: dto.InsuranceExpiresOn,
		LicenceExpiresOn:   dto.LicenceExpiresOn,
	})
}
