package identity

// SecurityContext is the identity attached to one request: either anonymous
// or an authenticated subject with its roles. It is a value; every request
// builds its own and nothing outlives the request.
type SecurityContext struct {
	subject       string
	roles         Roles
	authenticated bool
}

// Anonymous returns the context of a request without a usable credential.
func Anonymous() SecurityContext {
	return SecurityContext{}
}

// Authenticated returns the context established from verified claims.
func Authenticated(claims Claims) SecurityContext {
	return SecurityContext{
		subject:       claims.Subject,
		roles:         claims.Roles,
		authenticated: claims.Subject != "",
	}
}

func (c SecurityContext) IsAuthenticated() bool {
	return c.authenticated
}

// Subject is the username, empty for anonymous callers.
func (c SecurityContext) Subject() string {
	return c.subject
}

// Roles is empty for anonymous callers.
func (c SecurityContext) Roles() Roles {
	if !c.authenticated {
		return Roles{}
	}
	return c.roles
}
