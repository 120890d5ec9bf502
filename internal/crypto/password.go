// Package crypto holds the credential-hashing primitives of the service.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher performs one-way password hashing and verification using
// bcrypt. Each call to Hash produces a fresh salt, so hashing the same
// plaintext twice yields different outputs while Verify still matches both.
//
// The zero cost selects bcrypt's library default. The value is fixed at
// construction; it is safe for concurrent use.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher constructs a PasswordHasher with the given bcrypt cost
// factor. A cost of 0 (or any value outside bcrypt's supported range)
// falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted bcrypt hash from the plaintext password.
// The output embeds the salt and cost factor, so Verify needs no extra state.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash.
// A malformed hash is not an error condition for callers: any comparison
// failure, format errors included, reports false.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
