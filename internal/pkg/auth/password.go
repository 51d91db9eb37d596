package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of the password.
//
// This is the legacy stored-hash format the system has always used: a single
// unsalted round. It is a known weakness; moving to a salted, iterated scheme
// changes every stored digest and needs an explicit migration, so it must not
// be swapped out here silently.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a stored digest against the digest of a candidate
// password in constant time.
func CheckPassword(storedHash, password string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}
