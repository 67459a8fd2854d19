package identity

import (
	"errors"
	"strings"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is an employee account as loaded from the credential store.
// It is immutable and lives no longer than the request that loaded it.
type Principal struct {
	username     string
	passwordHash string
	roles        Roles

	guard guard.ConstructorGuard
}

// NewPrincipal validates and builds a principal. Every principal has at least
// one role; an account without roles could authenticate but never do anything.
func NewPrincipal(username string, passwordHash string, roles Roles) (*Principal, error) {
	p := &Principal{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setUsername(username),
		p.setPasswordHash(passwordHash),
		p.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Principal) Validate() error {
	if p == nil {
		return ErrPrincipalIsNotConstructed
	}
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p *Principal) Username() string {
	return p.username
}

// PasswordHash returns the one-way hash; the plaintext is never kept.
func (p *Principal) PasswordHash() string {
	return p.passwordHash
}

func (p *Principal) Roles() Roles {
	return p.roles
}

func (p *Principal) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	p.username = username
	return nil
}

func (p *Principal) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	p.passwordHash = hash
	return nil
}

func (p *Principal) setRoles(roles Roles) error {
	if roles.IsEmpty() {
		return errs.NewValueIsRequiredError("roles")
	}
	p.roles = roles
	return nil
}
