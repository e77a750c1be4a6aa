package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor used when no cost is
// configured.
const DefaultPasswordHashCost = 10

// HashPassword computes a salted bcrypt digest of password.
//
// cost outside the [bcrypt.MinCost, bcrypt.MaxCost] range is replaced by
// [bcrypt.DefaultCost]. Passwords longer than 72 bytes are rejected by bcrypt.
//
// Example usage:
//
//	digest, err := utils.HashPassword("pw1", utils.DefaultPasswordHashCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// ComparePassword reports whether password matches the bcrypt digest.
// The comparison is constant-time.
func ComparePassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
