package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCredentials = errors.New("email and password are required")
	ErrEmptyFirstName   = errors.New("first name is required")
	ErrEmptyLastName    = errors.New("last name is required")
	ErrEmptyUserName    = errors.New("user name is required")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrInvalidRole      = errors.New("invalid role")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyTitle    = errors.New("blog title is required")
	ErrEmptyBody     = errors.New("blog content is required")
	ErrNoImage       = errors.New("no image uploaded")
	ErrEmptyImage    = errors.New("empty image uploaded")
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrImageTooLarge = errors.New("uploaded image is too large")
)
