package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/inkloth/internal/crypto"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/MKhiriev/inkloth/models"
)

// dummyPassword feeds the digest compared against when a login names an
// unknown email.
const dummyPassword = "inkloth-no-such-account"

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	// dummyDigest is computed on the first login for an unknown email.
	dummyDigest func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the credential store.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		dummyDigest: sync.OnceValues(func() (string, error) {
			return hasher.Hash(context.Background(), dummyPassword)
		}),
		logger: logger,
	}
}

// Register creates a new account with the User role and the default avatar.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping the validator error;
//   - store.ErrEmailAlreadyExists / store.ErrUserNameAlreadyExists;
//   - crypto.ErrHashingFailed.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Register").Logger()

	var err error
	defer func() { recordAuthEvent(eventRegister, err) }()

	if err = a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration data")
		err = fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		return models.User{}, err
	}

	digest, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		UserName:     req.UserName,
		Email:        models.NormalizeEmail(req.Email),
		PasswordHash: digest,
		Role:         models.RoleUser,
		Avatar:       models.DefaultAvatar,
	})
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user creation ended with error")
		err = fmt.Errorf("user creation ended with error: %w", err)
		return models.User{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email still costs one hash comparison against a dummy digest.
// On success a digest produced at an outdated cost is replaced; failing to
// replace it does not fail the login.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Login").Logger()

	var err error
	defer func() { recordAuthEvent(eventLogin, err) }()

	if err = a.validator.Validate(ctx, req); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(req.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		if dummy, hashErr := a.dummyDigest(); hashErr == nil {
			a.hasher.Verify(ctx, req.Password, dummy)
		}
		log.Debug().Msg("login for unknown email")
		err = ErrInvalidCredentials
		return models.User{}, err
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		err = fmt.Errorf("user search by email failed: %w", err)
		return models.User{}, err
	}

	if !a.hasher.Verify(ctx, req.Password, user.PasswordHash) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		err = ErrInvalidCredentials
		return models.User{}, err
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		a.upgradeDigest(ctx, user, req.Password)
	}

	return user, nil
}

// upgradeDigest stores a digest of password at the configured cost. The swap
// is conditional on the digest that was just verified.
func (a *authService) upgradeDigest(ctx context.Context, user models.User, password string) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.upgradeDigest").Logger()

	digest, err := a.hasher.Hash(ctx, password)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("password digest upgrade skipped")
		return
	}

	if err = a.userRepository.UpdatePassword(ctx, user.UserID, user.PasswordHash, digest); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("password digest upgrade skipped")
	}
}

// ChangePassword replaces the password of userID.
//
// The old password is checked before the confirmation, so a wrong old
// password is reported even when the new pair also mismatches.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.ChangePassword").Logger()

	var err error
	defer func() { recordAuthEvent(eventChangePassword, err) }()

	if err = a.validator.Validate(ctx, req); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, err
	}

	if !a.hasher.Verify(ctx, req.OldPassword, user.PasswordHash) {
		err = ErrOldPasswordIncorrect
		return models.User{}, err
	}

	if req.NewPassword != req.ConfirmPassword {
		err = ErrPasswordMismatch
		return models.User{}, err
	}

	digest, err := a.hasher.Hash(ctx, req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, user.PasswordHash, digest); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return models.User{}, err
	}

	user.PasswordHash = digest
	log.Info().Int64("user_id", userID).Msg("password changed")
	return user, nil
}

// UpdateProfile applies a self-service update. The role cannot be changed
// here.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.UpdateProfile").Logger()

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.UpdateUser(ctx, userID, req.Update())
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, err
	}

	return user, nil
}
