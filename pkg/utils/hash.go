package utils

import "golang.org/x/crypto/bcrypt"

const hashRounds = 10

// HashPassword hashes a plaintext password with a per-hash random salt.
func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), hashRounds)
	return string(bytes), err
}

// CheckPassword reports whether pass matches hash. A malformed hash is
// treated as a mismatch, never an error.
func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
