package models

import (
	"strings"
	"time"
)

// Role is a coarse-grained permission tier attached to a user.
type Role string

const (
	// RoleUser is assigned to every account at registration.
	RoleUser Role = "User"

	// RoleAdmin grants access to the administrative routes.
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Avatar is an opaque reference to the user's profile picture.
type Avatar struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// DefaultAvatar is attached to every freshly registered account.
var DefaultAvatar = Avatar{
	PublicID: "This is a sample id",
	URL:      "profilepicUrl",
}

// User is the identity and credential record persisted in the users table.
//
// PasswordHash and the reset-challenge fields never leave the server: they
// are excluded from JSON serialization.
type User struct {
	// UserID is the server-assigned primary key.
	UserID int64 `json:"_id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// UserName is unique across all users.
	UserName string `json:"userName"`

	// Email is unique across all users and always stored normalized
	// (see NormalizeEmail).
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	Role   Role   `json:"role"`
	Avatar Avatar `json:"avatar"`

	// ResetTokenHash is the SHA-256 hex digest of the outstanding password
	// reset secret. ResetTokenHash and ResetTokenExpire are either both set
	// or both nil.
	ResetTokenHash   *string    `json:"-"`
	ResetTokenExpire *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the identity attached to the request context once the
// user has been authenticated.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Role: u.Role}
}

// Author is the public projection of a user embedded in blog responses.
type Author struct {
	UserID    int64  `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// that uniqueness and lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
