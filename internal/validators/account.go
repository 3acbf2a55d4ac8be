package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/inkloth/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldUserName        = "user_name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldOldPassword     = "old_password"
	FieldRole            = "role"
	FieldNonEmptyUpdate  = "non_empty_update"
)

// Limits on account fields.
const (
	MaxNameLength     = 30
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
)

// AccountValidator implements [Validator] for the registration, login,
// password and profile request bodies.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.ForgotPasswordRequest:
		return validateEmail(value.Email)
	case *models.ForgotPasswordRequest:
		return validateEmail(value.Email)

	case models.ResetPasswordRequest:
		return v.validateReset(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateReset(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChange(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChange(*value, fields...)

	case models.ProfileUpdateRequest:
		return v.validateProfile(value, nil, fields...)
	case *models.ProfileUpdateRequest:
		return v.validateProfile(*value, nil, fields...)

	case models.RoleUpdateRequest:
		return v.validateProfile(value.ProfileUpdateRequest, value.Role, fields...)
	case *models.RoleUpdateRequest:
		return v.validateProfile(value.ProfileUpdateRequest, value.Role, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldUserName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFirstName:
			err = validateName(request.FirstName, ErrEmptyFirstName)
		case FieldLastName:
			err = validateName(request.LastName, ErrEmptyLastName)
		case FieldUserName:
			err = validateName(request.UserName, ErrEmptyUserName)
		case FieldEmail:
			err = validateEmail(request.Email)
		case FieldPassword:
			err = validatePassword(request.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateLogin only checks presence: strength rules apply when a password is
// set, not when it is presented.
func (v *AccountValidator) validateLogin(request models.LoginRequest) error {
	if strings.TrimSpace(request.Email) == "" || request.Password == "" {
		return ErrEmptyCredentials
	}
	return nil
}

func (v *AccountValidator) validateReset(request models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return err
			}
		case FieldConfirmPassword:
			if request.ConfirmPassword == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateChange(request models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if request.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldPassword:
			if err := validatePassword(request.NewPassword); err != nil {
				return err
			}
		case FieldConfirmPassword:
			if request.ConfirmPassword == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfile checks only the fields present in the update. role is nil
// for self-service updates.
func (v *AccountValidator) validateProfile(request models.ProfileUpdateRequest, role *models.Role, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldUserName, FieldEmail, FieldRole, FieldNonEmptyUpdate}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFirstName:
			if request.FirstName != nil {
				err = validateName(*request.FirstName, ErrEmptyFirstName)
			}
		case FieldLastName:
			if request.LastName != nil {
				err = validateName(*request.LastName, ErrEmptyLastName)
			}
		case FieldUserName:
			if request.UserName != nil {
				err = validateName(*request.UserName, ErrEmptyUserName)
			}
		case FieldEmail:
			if request.Email != nil {
				err = validateEmail(*request.Email)
			}
		case FieldRole:
			if role != nil && !role.Valid() {
				err = ErrInvalidRole
			}
		case FieldNonEmptyUpdate:
			update := request.Update()
			update.Role = role
			if update.Empty() {
				err = ErrNoFieldsToUpdate
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateName(name string, errEmpty error) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrFieldTooLong
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}
