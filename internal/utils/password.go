package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a given password using bcrypt. Cost 10 matches what
// already-registered patient records were hashed with.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with its hashed version.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
