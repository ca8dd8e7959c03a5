package helpers

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/adityawp/casaly/internal/apperr"
)

// bcryptCost is fixed; changing it only affects newly stored hashes.
const bcryptCost = 10

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", apperr.New(apperr.KindInvalidInput, "password must not be empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a bcrypt hash with a plain password
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
