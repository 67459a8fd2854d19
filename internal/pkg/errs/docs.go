// Package errs provides the shared error vocabulary of the forwarding service.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the details (parameter name, identifier, cause)
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps the sentinels to status codes, so domain and application
// code never deal with transport concerns:
//   - ErrObjectNotFound      -> 404
//   - ErrObjectAlreadyExists -> 409
//   - ErrValueIsInvalid      -> 400
//   - ErrValueIsRequired     -> 400
//   - ErrInfrastructure      -> 503 (retryable by the client)
package errs
