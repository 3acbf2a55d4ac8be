// Package service holds the business rules of the service: account
// registration and login, session tokens, the password reset protocol, the
// authorization guard, and the user and blog operations built on top of
// them.
package service

import (
	"context"

	"github.com/MKhiriev/inkloth/models"
)

// AuthService covers the operations a user performs on their own account.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login returns [ErrInvalidCredentials] for an unknown email and for a
	// wrong password alike.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ChangePassword checks the old password and swaps in the new digest
	// only if the stored one did not change meanwhile.
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) (models.User, error)

	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)

	// Verify returns the identity carried by raw. Every failure wraps
	// [ErrUnauthenticated].
	Verify(ctx context.Context, raw string) (models.Identity, error)
}

// PasswordResetService runs the forgot/reset password protocol.
type PasswordResetService interface {
	// RequestReset mints a challenge for the account behind email and mails
	// the reset link rooted at baseURL.
	RequestReset(ctx context.Context, email, baseURL string) error

	// ResetPassword consumes the challenge identified by secret and sets the
	// new password. A wrong, expired or already used secret yields
	// [ErrChallengeInvalid].
	ResetPassword(ctx context.Context, secret string, req models.ResetPasswordRequest) (models.User, error)
}

// UserService covers user lookups and the administrative user operations.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, page models.Page) (models.UsersPage, error)
	UpdateUser(ctx context.Context, userID int64, req models.RoleUpdateRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// BlogService covers blog reads and owner-only mutations.
type BlogService interface {
	CreateBlog(ctx context.Context, identity models.Identity, req models.BlogRequest, image *models.ImageFile) (models.Blog, error)
	GetBlog(ctx context.Context, blogID int64) (models.Blog, error)
	ListBlogs(ctx context.Context, page models.Page) (models.BlogsPage, error)

	// UpdateBlog keeps the stored title and body when the request leaves
	// them empty; a non-nil image replaces the stored one.
	UpdateBlog(ctx context.Context, identity models.Identity, blogID int64, req models.BlogRequest, image *models.ImageFile) (models.Blog, error)
	DeleteBlog(ctx context.Context, identity models.Identity, blogID int64) error
}

// AccessGuard is the authorization policy. It is pure: it never touches the
// store.
type AccessGuard interface {
	// AuthorizeRoles returns [ErrForbiddenRole] unless identity holds one of
	// allowed.
	AuthorizeRoles(identity models.Identity, allowed ...models.Role) error

	// AuthorizeOwnership returns [ErrForbiddenOwnership] unless identity is
	// the owner. The role plays no part.
	AuthorizeOwnership(identity models.Identity, ownerID int64) error
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
