package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned for passwords over MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

	ErrHashingFailed = errors.New("password hashing failed")
)
