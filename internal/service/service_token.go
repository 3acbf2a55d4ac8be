package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/models"
)

// tokenService issues and verifies HS256 session tokens.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the immutable app config.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue signs a token for user. The role claim is informational.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.UserID, user.Role, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, algorithm, issuer and expiry of raw.
//
// The returned error wraps ErrUnauthenticated together with
// utils.ErrTokenIsExpired or utils.ErrTokenIsInvalid.
func (s *tokenService) Verify(ctx context.Context, raw string) (models.Identity, error) {
	var err error
	defer func() { recordAuthEvent(eventTokenVerify, err) }()

	if raw == "" {
		err = ErrUnauthenticated
		return models.Identity{}, err
	}

	token, err := utils.ValidateAndParseJWTToken(raw, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		err = fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		return models.Identity{}, err
	}

	return models.Identity{UserID: token.UserID, Role: token.Claims.Role}, nil
}
