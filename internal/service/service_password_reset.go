// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/inkloth/internal/adapter"
	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/crypto"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/MKhiriev/inkloth/models"
)

const (
	resetSubject = "Inkloth Password Recovery"
	resetPath    = "/api/v1/password/reset/"
)

// passwordResetService runs the two-step reset protocol: a single-use,
// time-limited secret is mailed out, and presenting it sets a new password.
// Only the SHA-256 digest of the secret is ever stored.
type passwordResetService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	mailer         adapter.Mailer
	validator      validators.Validator

	ttl           time.Duration
	publicBaseURL string

	now func() time.Time

	logger *logger.Logger
}

func NewPasswordResetService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	mailer adapter.Mailer,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		hasher:         hasher,
		mailer:         mailer,
		validator:      validator,
		ttl:            cfg.ResetTokenTTL,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		now:            time.Now,
		logger:         logger,
	}
}

// RequestReset replaces any outstanding challenge of the account behind
// email and mails the link. When the mail cannot be sent the new challenge
// is cleared again and ErrNotificationFailed is returned.
//
// A configured public base URL wins over baseURL.
func (s *passwordResetService) RequestReset(ctx context.Context, email, baseURL string) error {
	log := logger.FromContext(ctx).With().Str("func", "*passwordResetService.RequestReset").Logger()

	var err error
	defer func() { recordAuthEvent(eventResetRequest, err) }()

	if err = s.validator.Validate(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		return err
	}

	user, err := s.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		log.Debug().Err(err).Msg("reset requested for unknown account")
		return err
	}

	secret, hash, err := utils.GenerateResetSecret()
	if err != nil {
		log.Err(err).Msg("reset secret generation failed")
		return err
	}

	if err = s.userRepository.SetResetChallenge(ctx, user.UserID, hash, s.now().Add(s.ttl)); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("storing reset challenge failed")
		return err
	}

	if s.publicBaseURL != "" {
		baseURL = s.publicBaseURL
	}

	mailErr := s.mailer.Send(ctx, models.Email{
		To:      user.Email,
		Subject: resetSubject,
		Message: resetMessage(strings.TrimRight(baseURL, "/") + resetPath + secret),
	})
	if mailErr != nil {
		log.Err(mailErr).Int64("user_id", user.UserID).Msg("reset mail was not sent")

		// the caller may already be gone, the rollback must still happen
		if clearErr := s.userRepository.ClearResetChallenge(context.WithoutCancel(ctx), user.UserID, hash); clearErr != nil {
			log.Err(clearErr).Int64("user_id", user.UserID).Msg("clearing reset challenge failed")
		}

		err = fmt.Errorf("%w: %w", ErrNotificationFailed, mailErr)
		return err
	}

	log.Info().Int64("user_id", user.UserID).Msg("reset mail sent")
	return nil
}

// ResetPassword consumes the challenge matching secret. Wrong, expired and
// already consumed secrets are indistinguishable to the caller.
func (s *passwordResetService) ResetPassword(ctx context.Context, secret string, req models.ResetPasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*passwordResetService.ResetPassword").Logger()

	var err error
	defer func() { recordAuthEvent(eventResetPassword, err) }()

	if !utils.ValidResetSecretFormat(secret) {
		err = ErrChallengeInvalid
		return models.User{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		return models.User{}, err
	}

	if req.Password != req.ConfirmPassword {
		err = ErrPasswordMismatch
		return models.User{}, err
	}

	digest, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := s.userRepository.ConsumeResetChallenge(ctx, utils.HashResetSecret(secret), digest, s.now())
	if errors.Is(err, store.ErrResetChallengeNotFound) {
		err = ErrChallengeInvalid
		return models.User{}, err
	}
	if err != nil {
		log.Err(err).Msg("consuming reset challenge failed")
		return models.User{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("password reset")
	return user, nil
}

func resetMessage(url string) string {
	return "Your password reset token is :- \n\n " + url + " \n\n If you have not requested the email then please ignore it."
}
