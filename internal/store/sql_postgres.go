// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
)

// pingBackoffBase is the first delay between startup ping attempts; it
// doubles on each retry.
var pingBackoffBase = 500 * time.Millisecond

// Constraint names declared in the users migration.
const (
	usersEmailKey    = "users_email_key"
	usersUserNameKey = "users_user_name_key"
)

// NewConnectPostgres opens the pool and pings the database, retrying up to
// cfg.ConnectAttempts times while the failure looks transient.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err = db.ping(ctx, cfg.ConnectAttempts); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

// ping checks the connection. Network-level failures and retryable
// PostgreSQL codes are retried with exponential backoff; anything else
// fails immediately.
func (db *DB) ping(ctx context.Context, attempts int) error {
	if attempts < 1 {
		attempts = 1
	}
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(pingBackoffBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Int("attempt", attempt).Str("func", "*DB.ping").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// constraintError maps integrity violations raised by a write to the
// repository's domain errors. It returns nil when err is not one of them.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case usersEmailKey:
			return ErrEmailAlreadyExists
		case usersUserNameKey:
			return ErrUserNameAlreadyExists
		}
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)
	}

	return nil
}
