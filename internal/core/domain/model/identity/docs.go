// Package identity models who is calling: employees (principals) with their
// role sets, the bearer tokens issued to them and the per-request security
// context derived from those tokens.
//
// Roles are plain capability values. There is no role hierarchy: a check
// passes when the caller's role set intersects the set a route or workflow
// transition requires.
//
// Authentication failure kinds are distinct internally (ErrUnknownUser,
// ErrBadCredentials, ErrInvalidSignature, ErrTokenExpired) so they can be
// logged, but they are grouped under ErrAuthenticationFailed and
// ErrUnauthorized so that the transport layer reports them uniformly.
package identity
