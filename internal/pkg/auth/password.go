package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the adaptive hash cost applied at registration
const BcryptCost = 10

// maxPasswordBytes is the most bcrypt reads. Longer input is cut, never refused.
const maxPasswordBytes = 72

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword hashes a plain password with a per-call salt. Only the first
// 72 bytes take part in the hash.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(truncate(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored hash. A malformed
// hash is returned as an error rather than a mismatch.
func CheckPassword(hashedPassword, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), truncate(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
