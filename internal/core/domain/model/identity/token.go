package identity

import "time"

// Token is a signed bearer credential handed to the client after login.
// Value is the compact serialized form; the remaining fields mirror the
// signed payload for the login response.
type Token struct {
	Value     string
	Subject   string
	Roles     Roles
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Claims are the verified contents of a decoded token. They are only
// produced after the signature and expiry checks passed.
type Claims struct {
	Subject   string
	Roles     Roles
	IssuedAt  time.Time
	ExpiresAt time.Time
}
