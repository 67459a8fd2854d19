package ports

// PasswordVerifier compares a plaintext password with a stored hash.
type PasswordVerifier interface {
	// Verify returns identity.ErrBadCredentials on mismatch.
	Verify(plaintext, hash string) error

	// DecoyHash is a valid hash at the configured cost that no password
	// matches. Checking against it keeps a miss on the username as slow as a
	// miss on the password.
	DecoyHash() string
}

// PasswordHasher produces hashes that a PasswordVerifier accepts.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}
