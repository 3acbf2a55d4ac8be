// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/mock"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/MKhiriev/inkloth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var resetNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type resetMocks struct {
	repo   *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
	mailer *mock.MockMailer
}

func newTestResetSvc(t *testing.T, ctrl *gomock.Controller, publicBaseURL string) (*passwordResetService, resetMocks) {
	t.Helper()
	m := resetMocks{
		repo:   mock.NewMockUserRepository(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
		mailer: mock.NewMockMailer(ctrl),
	}

	cfg := config.App{ResetTokenTTL: 15 * time.Minute, PublicBaseURL: publicBaseURL}
	svc := NewPasswordResetService(m.repo, m.hasher, m.mailer, validators.NewAccountValidator(), cfg, logger.Nop()).(*passwordResetService)
	svc.now = func() time.Time { return resetNow }

	return svc, m
}

// secretFromMessage pulls the plaintext secret out of the mailed reset link.
func secretFromMessage(t *testing.T, message string) string {
	t.Helper()
	i := strings.Index(message, resetPath)
	require.NotEqual(t, -1, i, "message carries no reset link")

	rest := message[i+len(resetPath):]
	return strings.Fields(rest)[0]
}

// ─────────────────────────────────────────────
// RequestReset
// ─────────────────────────────────────────────

func TestPasswordResetService_RequestReset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "")
	ctx := context.Background()
	user := models.User{UserID: 5, Email: "alice@example.com"}

	var storedHash string
	gomock.InOrder(
		m.repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(user, nil),
		m.repo.EXPECT().SetResetChallenge(ctx, int64(5), gomock.Any(), resetNow.Add(15*time.Minute)).DoAndReturn(
			func(_ context.Context, _ int64, hash string, _ time.Time) error {
				storedHash = hash
				return nil
			},
		),
		m.mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, email models.Email) error {
				assert.Equal(t, "alice@example.com", email.To)
				assert.Equal(t, resetSubject, email.Subject)
				assert.True(t, strings.HasPrefix(email.Message, "Your password reset token is :- \n\n http://localhost:8080/api/v1/password/reset/"))
				assert.True(t, strings.HasSuffix(email.Message, " \n\n If you have not requested the email then please ignore it."))

				secret := secretFromMessage(t, email.Message)
				assert.True(t, utils.ValidResetSecretFormat(secret))
				assert.Equal(t, utils.HashResetSecret(secret), storedHash, "only the digest may be stored")
				return nil
			},
		),
	)

	err := svc.RequestReset(ctx, "Alice@Example.com", "http://localhost:8080/")

	require.NoError(t, err)
}

func TestPasswordResetService_RequestReset_PublicBaseURLWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "https://inkloth.example/")

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{UserID: 5, Email: "alice@example.com"}, nil)
	m.repo.EXPECT().SetResetChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email models.Email) error {
			assert.Contains(t, email.Message, " https://inkloth.example/api/v1/password/reset/")
			return nil
		},
	)

	require.NoError(t, svc.RequestReset(context.Background(), "alice@example.com", "http://evil.example"))
}

func TestPasswordResetService_RequestReset_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "")

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	err := svc.RequestReset(context.Background(), "ghost@example.com", "http://localhost")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPasswordResetService_RequestReset_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestResetSvc(t, ctrl, "")

	err := svc.RequestReset(context.Background(), "not-an-email", "http://localhost")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

// TestPasswordResetService_RequestReset_MailFailureRollsBack checks that the
// challenge minted for a mail that never left is cleared by its own digest.
func TestPasswordResetService_RequestReset_MailFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var storedHash string
	gomock.InOrder(
		m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{UserID: 5, Email: "alice@example.com"}, nil),
		m.repo.EXPECT().SetResetChallenge(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, hash string, _ time.Time) error {
				storedHash = hash
				return nil
			},
		),
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, models.Email) error {
				cancel()
				return errors.New("smtp: connection refused")
			},
		),
		m.repo.EXPECT().ClearResetChallenge(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
			func(clearCtx context.Context, _ int64, hash string) error {
				assert.NoError(t, clearCtx.Err(), "rollback must outlive the request")
				assert.Equal(t, storedHash, hash)
				return nil
			},
		),
	)

	err := svc.RequestReset(ctx, "alice@example.com", "http://localhost")

	assert.ErrorIs(t, err, ErrNotificationFailed)
}

func TestPasswordResetService_RequestReset_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "")

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{UserID: 5}, nil)
	m.repo.EXPECT().SetResetChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrExecutingQuery)

	err := svc.RequestReset(context.Background(), "alice@example.com", "http://localhost")

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// ResetPassword
// ─────────────────────────────────────────────

func validSecret(t *testing.T) string {
	t.Helper()
	secret, _, err := utils.GenerateResetSecret()
	require.NoError(t, err)
	return secret
}

func TestPasswordResetService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "")
	secret := validSecret(t)

	gomock.InOrder(
		m.hasher.EXPECT().Hash(gomock.Any(), "looking-glass").Return("$2a$10$new", nil),
		m.repo.EXPECT().ConsumeResetChallenge(gomock.Any(), utils.HashResetSecret(secret), "$2a$10$new", resetNow).
			Return(models.User{UserID: 5, PasswordHash: "$2a$10$new"}, nil),
	)

	user, err := svc.ResetPassword(context.Background(), secret, models.ResetPasswordRequest{Password: "looking-glass", ConfirmPassword: "looking-glass"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
}

// TestPasswordResetService_ResetPassword_SecondUseIsInvalid covers a consumed,
// expired or superseded challenge: the store finds no row for the digest.
func TestPasswordResetService_ResetPassword_SecondUseIsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "")
	secret := validSecret(t)
	req := models.ResetPasswordRequest{Password: "looking-glass", ConfirmPassword: "looking-glass"}

	m.hasher.EXPECT().Hash(gomock.Any(), gomock.Any()).Return("$2a$10$new", nil).Times(2)
	gomock.InOrder(
		m.repo.EXPECT().ConsumeResetChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{UserID: 5}, nil),
		m.repo.EXPECT().ConsumeResetChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrResetChallengeNotFound),
	)

	_, err := svc.ResetPassword(context.Background(), secret, req)
	require.NoError(t, err)

	_, err = svc.ResetPassword(context.Background(), secret, req)
	assert.ErrorIs(t, err, ErrChallengeInvalid)
}

// TestPasswordResetService_NewChallengeSupersedesOld runs two requests against
// a store that keeps a single challenge slot per user, like the users table.
func TestPasswordResetService_NewChallengeSupersedesOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl, "")
	ctx := context.Background()
	user := models.User{UserID: 5, Email: "alice@example.com"}

	var activeHash string
	var activeExpire time.Time
	var mailed []string

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(user, nil).Times(2)
	m.repo.EXPECT().SetResetChallenge(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, hash string, expire time.Time) error {
			activeHash, activeExpire = hash, expire
			return nil
		},
	).Times(2)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email models.Email) error {
			mailed = append(mailed, secretFromMessage(t, email.Message))
			return nil
		},
	).Times(2)
	m.hasher.EXPECT().Hash(gomock.Any(), "looking-glass").Return("$2a$10$new", nil).Times(2)
	m.repo.EXPECT().ConsumeResetChallenge(gomock.Any(), gomock.Any(), "$2a$10$new", resetNow).DoAndReturn(
		func(_ context.Context, hash, _ string, now time.Time) (models.User, error) {
			if activeHash == "" || hash != activeHash || !activeExpire.After(now) {
				return models.User{}, store.ErrResetChallengeNotFound
			}
			activeHash = ""
			return user, nil
		},
	).Times(2)

	require.NoError(t, svc.RequestReset(ctx, user.Email, "http://localhost"))
	require.NoError(t, svc.RequestReset(ctx, user.Email, "http://localhost"))
	require.Len(t, mailed, 2)
	require.NotEqual(t, mailed[0], mailed[1])

	req := models.ResetPasswordRequest{Password: "looking-glass", ConfirmPassword: "looking-glass"}

	_, err := svc.ResetPassword(ctx, mailed[0], req)
	assert.ErrorIs(t, err, ErrChallengeInvalid)

	got, err := svc.ResetPassword(ctx, mailed[1], req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.UserID)
}

func TestPasswordResetService_ResetPassword_MalformedSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestResetSvc(t, ctrl, "")
	req := models.ResetPasswordRequest{Password: "looking-glass", ConfirmPassword: "looking-glass"}

	for _, secret := range []string{"", "abc", strings.Repeat("z", 64), strings.Repeat("a", 65)} {
		_, err := svc.ResetPassword(context.Background(), secret, req)
		assert.ErrorIs(t, err, ErrChallengeInvalid, "secret %q", secret)
	}
}

// TestPasswordResetService_ResetPassword_MismatchKeepsChallenge checks that a
// mismatch is reported before the challenge is touched.
func TestPasswordResetService_ResetPassword_MismatchKeepsChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestResetSvc(t, ctrl, "")

	_, err := svc.ResetPassword(context.Background(), validSecret(t), models.ResetPasswordRequest{Password: "looking-glass", ConfirmPassword: "looking-glasses"})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestPasswordResetService_ResetPassword_MissingPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestResetSvc(t, ctrl, "")

	_, err := svc.ResetPassword(context.Background(), validSecret(t), models.ResetPasswordRequest{ConfirmPassword: "looking-glass"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}
