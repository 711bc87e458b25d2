package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest of the password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(digest), err
}

// CheckPassword reports whether the plaintext matches the stored digest.
// A malformed digest is treated as a mismatch, never an error.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
