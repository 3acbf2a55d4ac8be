package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.UserName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Avatar.PublicID,
		&user.Avatar.URL,
		&user.ResetTokenHash,
		&user.ResetTokenExpire,
		&user.CreatedAt,
	)

	return user, err
}

// queryUser runs a statement returning at most one user row. notFound is
// returned when the statement matches nothing.
func (r *userRepository) queryUser(ctx context.Context, funcName string, notFound error, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, notFound
	}

	if domainErr := constraintError(err); domainErr != nil {
		log.Debug().Err(err).Str("func", funcName).Msg("write rejected by constraint")
		return models.User{}, domainErr
	}

	log.Err(err).Str("func", funcName).Str("pg_code", postgresError(err)).Msg("error querying user")
	return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.CreateUser", ErrScanningRow, createUser,
		user.FirstName,
		user.LastName,
		user.UserName,
		user.Email,
		user.PasswordHash,
		user.Role.String(),
		user.Avatar.PublicID,
		user.Avatar.URL,
	)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.FindUserByID", ErrUserNotFound, findUserByID, userID)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.FindUserByEmail", ErrUserNotFound, findUserByEmail, email)
}

func (r *userRepository) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "*userRepository.CountUsers", countUsers)
}

func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	query, args, err := buildUpdateUserQuery(userID, update)
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.UpdateUser", ErrUserNotFound, query, args...)
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, oldDigest, newDigest string) error {
	affected, err := exec(ctx, r.db, "*userRepository.UpdatePassword", updatePassword, userID, oldDigest, newDigest)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPasswordChanged
	}

	return nil
}

func (r *userRepository) SetResetChallenge(ctx context.Context, userID int64, secretHash string, expire time.Time) error {
	affected, err := exec(ctx, r.db, "*userRepository.SetResetChallenge", setResetChallenge, userID, secretHash, expire)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ClearResetChallenge is a no-op when a newer challenge has replaced the one
// identified by secretHash.
func (r *userRepository) ClearResetChallenge(ctx context.Context, userID int64, secretHash string) error {
	_, err := exec(ctx, r.db, "*userRepository.ClearResetChallenge", clearResetChallenge, userID, secretHash)
	return err
}

func (r *userRepository) ConsumeResetChallenge(ctx context.Context, secretHash, newDigest string, now time.Time) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.ConsumeResetChallenge", ErrResetChallengeNotFound, consumeResetChallenge, secretHash, newDigest, now)
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	affected, err := exec(ctx, r.db, "*userRepository.DeleteUser", deleteUser, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// exec runs a DML statement and returns the number of affected rows.
func exec(ctx context.Context, db *DB, funcName, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		if domainErr := constraintError(err); domainErr != nil {
			return 0, domainErr
		}
		log.Err(err).Str("func", funcName).Str("pg_code", postgresError(err)).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func count(ctx context.Context, db *DB, funcName, query string) (int64, error) {
	var total int64
	if err := db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error counting rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
