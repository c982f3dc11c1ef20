package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty password is given to Hash.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hasher performs one-way salted password hashing with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher initializes a hasher with the given bcrypt cost factor.
// A cost of 0 selects bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of the given plaintext password. The output
// embeds its own salt, so two calls with the same input produce different
// hashes.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext password matches the stored hash.
// It returns false for any mismatch or malformed hash.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
