package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is returned when the caller presents no token, or a
	// token that is expired, tampered with or issued for a deleted user.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrForbiddenRole      = errors.New("role is not allowed to access this resource")
	ErrForbiddenOwnership = errors.New("caller does not own this resource")

	ErrPasswordMismatch     = errors.New("password does not match confirmation")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")

	// ErrChallengeInvalid covers every reason a reset secret is refused.
	ErrChallengeInvalid = errors.New("reset challenge is invalid or has expired")

	ErrNotificationFailed  = errors.New("notification could not be delivered")
	ErrImageUploadFailed   = errors.New("image upload failed")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
