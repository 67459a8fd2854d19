// Package bcrypthash hashes and verifies passwords with bcrypt.
package bcrypthash

import (
	"crypto/rand"
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var ErrCostIsInvalid = fmt.Errorf("bcrypt cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)

// Hasher implements ports.PasswordHasher and ports.PasswordVerifier. The cost
// is fixed at construction.
type Hasher struct {
	cost  int
	decoy string
}

func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, ErrCostIsInvalid
	}

	decoy, err := bcrypt.GenerateFromPassword([]byte(rand.Text()), cost)
	if err != nil {
		return nil, fmt.Errorf("generate decoy hash: %w", err)
	}
	return &Hasher{cost: cost, decoy: string(decoy)}, nil
}

// DecoyHash is generated from a random secret that is thrown away.
func (h *Hasher) DecoyHash() string {
	return h.decoy
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errs.NewValueIsInvalidErrorWithCause("password", err)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify runs in time independent of where the mismatch is. A stored hash
// that is not a bcrypt hash is treated as a mismatch.
func (h *Hasher) Verify(plaintext, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return identity.ErrBadCredentials
	}
	return nil
}
