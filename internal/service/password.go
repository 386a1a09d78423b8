package service

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashPassword digests the UTF-8 password with SHA-256 and encodes it base64.
// Known weakness: the digest is unsalted and fast, so identical passwords
// hash identically and are cheap to brute-force. Kept for compatibility with
// the existing user rows; a migration to a salted slow hash would invalidate
// every stored credential.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest and compares for exact equality.
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return HashPassword(password) == hash
}
