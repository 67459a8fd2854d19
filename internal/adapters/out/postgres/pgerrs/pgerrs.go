// Package pgerrs classifies PostgreSQL driver errors for the repositories.
package pgerrs

import (
	"errors"

	"forwarding/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Infrastructure wraps a driver or context error so that callers can tell
// it apart from domain failures. Errors that already carry an errs type are
// returned unchanged.
func Infrastructure(component string, err error) error {
	if err == nil {
		return nil
	}
	var infraErr *errs.InfrastructureError
	if errors.As(err, &infraErr) {
		return err
	}
	return errs.NewInfrastructureError(component, err)
}
