// Package cryptox holds the password hashing primitives used to store and
// check account credentials.
package cryptox

// Hasher produces and checks salted one-way password hashes.
type Hasher interface {
	// Hash returns an encoded hash of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed hash
	// never matches.
	Verify(encodedHash, password string) bool
}
