package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/MKhiriev/inkloth/models"
)

// DefaultUsersLimit is the page size of the admin user listing.
const DefaultUsersLimit = 2

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

// ListUsers returns one page of users ordered by id. A zero page number or
// limit falls back to the first page of DefaultUsersLimit users.
func (s *userService) ListUsers(ctx context.Context, page models.Page) (models.UsersPage, error) {
	log := logger.FromContext(ctx).With().Str("func", "*userService.ListUsers").Logger()

	page = normalizePage(page, DefaultUsersLimit)

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.UsersPage{}, err
	}

	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return models.UsersPage{}, err
	}
	if users == nil {
		users = []models.User{}
	}

	return models.UsersPage{
		Success:     true,
		Users:       users,
		TotalUsers:  total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
	}, nil
}

// UpdateUser is the administrative update; unlike UpdateProfile it may change
// the role.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req models.RoleUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*userService.UpdateUser").Logger()

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, req.Update())
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update failed")
		return models.User{}, err
	}

	log.Info().Int64("user_id", userID).Str("role", user.Role.String()).Msg("user updated")
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("user deletion failed")
		return err
	}

	return nil
}

func normalizePage(page models.Page, defaultLimit int) models.Page {
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultLimit
	}
	page.Limit = min(page.Limit, models.MaxPageLimit)
	return page
}
