// Package principalrepo is the GORM-backed credential store.
package principalrepo

import (
	"time"

	"forwarding/internal/core/domain/model/identity"

	"github.com/lib/pq"
)

// PrincipalDTO is an employee account row. Roles are stored by wire name in
// a text[] column.
type PrincipalDTO struct {
	Username     string         `gorm:"type:varchar(64);primaryKey"`
	PasswordHash string         `gorm:"not null"`
	Roles        pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt    time.Time
}

func (PrincipalDTO) TableName() string {
	return "principals"
}

func fromDomain(p *identity.Principal) PrincipalDTO {
	return PrincipalDTO{
		Username:     p.Username(),
		PasswordHash: p.PasswordHash(),
		Roles:        pq.StringArray(p.Roles().Strings()),
	}
}

func toDomain(dto PrincipalDTO) (*identity.Principal, error) {
	roles, err := identity.RolesFromStrings(dto.Roles)
	if err != nil {
		return nil, err
	}
	return identity.NewPrincipal(dto.Username, dto.PasswordHash, roles)
}
