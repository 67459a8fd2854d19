package identity

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationFailed groups every login failure. Callers outside the
	// core must not be able to tell which check failed.
	ErrAuthenticationFailed = errors.New("bad credentials")

	ErrUnknownUser    = fmt.Errorf("%w: unknown user", ErrAuthenticationFailed)
	ErrBadCredentials = fmt.Errorf("%w: password mismatch", ErrAuthenticationFailed)

	// ErrUnauthorized groups every bearer token failure.
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidSignature = fmt.Errorf("%w: invalid token signature", ErrUnauthorized)
	ErrTokenExpired     = fmt.Errorf("%w: token expired", ErrUnauthorized)

	// ErrForbidden is returned when an authenticated caller lacks a required role.
	ErrForbidden = errors.New("forbidden")
)
