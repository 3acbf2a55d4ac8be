package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing digests and
// checks candidates against them.
//
// A digest embeds its own salt and work factor, so digests produced with an
// older cost keep verifying after the configured cost changes.
type PasswordHasher interface {
	// Hash returns a fresh salted digest of plaintext.
	// Returns ErrPasswordTooLong for input the algorithm would truncate and
	// ErrHashingFailed for any other failure, including ctx being done
	// before a hashing slot was free.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed or empty
	// digest is a mismatch, never an error.
	Verify(ctx context.Context, plaintext, digest string) bool

	// NeedsRehash reports whether digest was produced with a work factor
	// other than the configured one.
	NeedsRehash(digest string) bool
}
