package principalrepo

import (
	"context"
	"errors"
	"strings"

	"forwarding/internal/adapters/out/postgres/pgerrs"
	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

const component = "principals"

// GormCredentialStore implements ports.CredentialStore. Usernames are
// matched exactly after trimming.
type GormCredentialStore struct {
	db *gorm.DB
}

func NewGormCredentialStore(db *gorm.DB) *GormCredentialStore {
	return &GormCredentialStore{db: db}
}

func (s *GormCredentialStore) FindByUsername(ctx context.Context, username string) (*identity.Principal, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, identity.ErrUnknownUser
	}

	var dto PrincipalDTO
	if err := s.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrUnknownUser
		}
		return nil, pgerrs.Infrastructure(component, err)
	}

	return toDomain(dto)
}

func (s *GormCredentialStore) Add(ctx context.Context, principal *identity.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	dto := fromDomain(principal)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("principal", principal.Username(), err)
		}
		return pgerrs.Infrastructure(component, err)
	}
	return nil
}
