// Package store is the persistence layer of the service. It owns the
// PostgreSQL connection and exposes the credential store ([UserRepository])
// and the blog store ([BlogRepository]).
//
// Every read-modify-write is issued as a single SQL statement, so two
// concurrent requests touching the same row never interleave between a read
// and a write.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/inkloth/models"
)

// UserRepository is the credential store backed by the "users" table.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with UserID and
	// CreatedAt populated. A clash on email or user name yields
	// [ErrEmailAlreadyExists] or [ErrUserNameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID and FindUserByEmail return [ErrUserNotFound] when no row
	// matches. The email must already be normalized.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// resulting row. An empty update yields [ErrNothingToUpdate].
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// UpdatePassword replaces the digest only if the stored digest still
	// equals oldDigest; otherwise it returns [ErrPasswordChanged].
	UpdatePassword(ctx context.Context, userID int64, oldDigest, newDigest string) error

	// SetResetChallenge stores the hashed reset secret and its expiry,
	// replacing any previous challenge.
	SetResetChallenge(ctx context.Context, userID int64, secretHash string, expire time.Time) error

	// ClearResetChallenge removes the challenge only if it is still the one
	// identified by secretHash.
	ClearResetChallenge(ctx context.Context, userID int64, secretHash string) error

	// ConsumeResetChallenge atomically swaps the password digest and clears
	// the challenge matching secretHash, provided it has not expired at now.
	// It returns [ErrResetChallengeNotFound] when no such challenge exists.
	ConsumeResetChallenge(ctx context.Context, secretHash, newDigest string, now time.Time) (models.User, error)

	DeleteUser(ctx context.Context, userID int64) error
}

// BlogRepository is the blog store backed by the "blogs" table. Update and
// delete are scoped to the owner: rows owned by someone else are reported as
// [ErrBlogNotFound].
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	FindBlogByID(ctx context.Context, blogID int64) (models.Blog, error)
	ListBlogs(ctx context.Context, page models.Page) ([]models.Blog, error)
	CountBlogs(ctx context.Context) (int64, error)
	UpdateBlog(ctx context.Context, blogID, ownerID int64, update models.BlogUpdate) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID, ownerID int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
