package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ResetSecretBytes is the entropy of a password reset secret before hex
// encoding.
const ResetSecretBytes = 32

// GenerateResetSecret returns a fresh password reset secret and its SHA-256
// digest.
//
// secret is 64 lowercase hex characters and is only ever sent to the user;
// hash is what gets persisted.
func GenerateResetSecret() (secret, hash string, err error) {
	buf := make([]byte, ResetSecretBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("error generating reset secret: %w", err)
	}

	secret = hex.EncodeToString(buf)
	return secret, HashResetSecret(secret), nil
}

// HashResetSecret returns the hex-encoded SHA-256 digest of secret.
func HashResetSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// ValidResetSecretFormat reports whether s could have been produced by
// GenerateResetSecret.
func ValidResetSecretFormat(s string) bool {
	if len(s) != hex.EncodedLen(ResetSecretBytes) {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
