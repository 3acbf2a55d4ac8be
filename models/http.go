package models

import "math"

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /password/forgot.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of PUT /password/reset/{token}.
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest is the body of PUT /password/update.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ProfileUpdateRequest lists the fields a user may change on their own
// account. Nil fields are left untouched.
type ProfileUpdateRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	UserName  *string `json:"userName,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// RoleUpdateRequest is the administrative variant of ProfileUpdateRequest
// that may also change the role.
type RoleUpdateRequest struct {
	ProfileUpdateRequest

	Role *Role `json:"role,omitempty"`
}

// UserUpdate is the allow-listed column set passed to the credential store.
// Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	UserName  *string
	Email     *string
	Role      *Role
}

// Empty reports whether the update carries no changes.
func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.UserName == nil && u.Email == nil && u.Role == nil
}

// Update converts the request into a store update without a role change.
func (r ProfileUpdateRequest) Update() UserUpdate {
	update := UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		UserName:  r.UserName,
	}
	if r.Email != nil {
		email := NormalizeEmail(*r.Email)
		update.Email = &email
	}

	return update
}

// Update converts the request into a store update including the role.
func (r RoleUpdateRequest) Update() UserUpdate {
	update := r.ProfileUpdateRequest.Update()
	update.Role = r.Role
	return update
}

// BlogRequest carries the text fields of a multipart blog form.
type BlogRequest struct {
	Title string
	Body  string
}

// MaxPageLimit caps the number of rows a single listing returns.
const MaxPageLimit = 100

// Page is a 1-based pagination window.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt64
// instead of overflowing for very large page numbers.
func (p Page) Offset() int64 {
	if p.Number < 1 || p.Limit < 1 {
		return 0
	}
	skipped := int64(p.Number - 1)
	if skipped > math.MaxInt64/int64(p.Limit) {
		return math.MaxInt64
	}
	return skipped * int64(p.Limit)
}

// TotalPages returns ceil(total / limit).
func (p Page) TotalPages(total int64) int64 {
	if p.Limit <= 0 {
		return 0
	}
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}

// Email is an outbound message handed to the mailer.
type Email struct {
	To      string
	Subject string
	Message string
}
