package account

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PasswordHasher defines the minimal credential-derivation interface
// (abstract so the KDF can be swapped without touching the workflows).
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Derive(password, salt string) string
	Verify(password, salt, hash string) bool
}

const (
	saltBytes      = 16
	kdfIterations  = 1000
	kdfKeyLenBytes = 64
)

// PBKDF2Hasher derives hex-encoded PBKDF2-SHA512 hashes over the hex-encoded
// salt string, matching the stored credential format.
type PBKDF2Hasher struct{}

// GenerateSalt returns 16 crypto-random bytes, hex encoded.
func (PBKDF2Hasher) GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Derive is deterministic: identical password and salt always yield the
// same hash.
func (PBKDF2Hasher) Derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), kdfIterations, kdfKeyLenBytes, sha512.New)
	return hex.EncodeToString(key)
}

// Verify recomputes the hash with the stored salt and compares in constant
// time.
func (h PBKDF2Hasher) Verify(password, salt, hash string) bool {
	derived := h.Derive(password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}
