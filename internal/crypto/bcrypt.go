// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing used by the credential
// operations.
package crypto

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkloth/internal/workers"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt consumes.
const MaxPasswordBytes = 72

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the work factor for new digests.
	cost int

	// pool bounds how many hashes run at once.
	pool *workers.Pool
}

// NewPasswordHasher returns a bcrypt [PasswordHasher] producing digests at
// cost. cost is clamped to [bcrypt.MinCost, bcrypt.MaxCost]. Every Hash and
// Verify call is scheduled through pool.
func NewPasswordHasher(cost int, pool *workers.Pool) PasswordHasher {
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)
	if pool == nil {
		pool = workers.NewPool(0)
	}

	return &bcryptHasher{cost: cost, pool: pool}
}

func (h *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	var digest []byte
	err := h.pool.Do(ctx, func() error {
		var err error
		digest, err = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(digest), nil
}

func (h *bcryptHasher) Verify(ctx context.Context, plaintext, digest string) bool {
	if digest == "" {
		return false
	}

	err := h.pool.Do(ctx, func() error {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	})
	return err == nil
}

// NeedsRehash returns false for a digest whose cost cannot be read; such a
// digest never verifies in the first place.
func (h *bcryptHasher) NeedsRehash(digest string) bool {
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return false
	}
	return cost != h.cost
}
