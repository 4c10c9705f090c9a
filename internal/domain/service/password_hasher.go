// Package service defines interfaces for domain capabilities provided by infrastructure.
package service

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
